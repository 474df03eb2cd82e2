package progress

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Backend keys. Each field is stored independently so that one corrupt
// value never hides the others.
const (
	KeyCompletedLessons  = "completedLessons"
	KeyLessonNotes       = "lessonNotes"
	KeyLessonCheckpoints = "lessonCheckpoints"
	KeyPracticeChecks    = "practiceChecks"
	KeyActiveLessonID    = "activeLessonId"
)

var errNotObject = errors.New("not a JSON object")

func encodeBoolMap(m map[string]bool) (string, error) {
	// Only true entries are meaningful.
	out := make(map[string]bool, len(m))
	for k, v := range m {
		if v {
			out[k] = true
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeStringMap(m map[string]string) (string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeBoolMap accepts a JSON object of booleans. A JSON array of strings is
// also accepted and read as a set, which is how completion used to be stored.
// False entries are dropped.
func decodeBoolMap(raw string) (map[string]bool, error) {
	out := make(map[string]bool)

	var obj map[string]bool
	objErr := json.Unmarshal([]byte(raw), &obj)
	if objErr == nil && obj != nil {
		for k, v := range obj {
			if v {
				out[k] = true
			}
		}
		return out, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil && list != nil {
		for _, id := range list {
			out[id] = true
		}
		return out, nil
	}

	if objErr != nil {
		return nil, objErr
	}
	return nil, errNotObject
}

func decodeStringMap(raw string) (map[string]string, error) {
	var obj map[string]string
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotObject
	}
	for k, v := range obj {
		if v == "" {
			delete(obj, k)
		}
	}
	return obj, nil
}

// encodeField serializes the named field of st.
func encodeField(st State, key string) (string, error) {
	switch key {
	case KeyCompletedLessons:
		return encodeBoolMap(st.CompletedLessons)
	case KeyLessonNotes:
		return encodeStringMap(st.LessonNotes)
	case KeyLessonCheckpoints:
		return encodeStringMap(st.LessonCheckpoints)
	case KeyPracticeChecks:
		return encodeBoolMap(st.PracticeChecks)
	case KeyActiveLessonID:
		return st.ActiveLessonID, nil
	default:
		return "", fmt.Errorf("unknown progress key %q", key)
	}
}

// decodeField parses raw into the named field of st. On error st is left
// untouched.
func decodeField(st *State, key, raw string) error {
	switch key {
	case KeyCompletedLessons, KeyPracticeChecks:
		m, err := decodeBoolMap(raw)
		if err != nil {
			return err
		}
		if key == KeyCompletedLessons {
			st.CompletedLessons = m
		} else {
			st.PracticeChecks = m
		}
	case KeyLessonNotes, KeyLessonCheckpoints:
		m, err := decodeStringMap(raw)
		if err != nil {
			return err
		}
		if key == KeyLessonNotes {
			st.LessonNotes = m
		} else {
			st.LessonCheckpoints = m
		}
	case KeyActiveLessonID:
		st.ActiveLessonID = raw
	default:
		return fmt.Errorf("unknown progress key %q", key)
	}
	return nil
}

// allKeys lists every progress key in load order.
var allKeys = []string{
	KeyCompletedLessons,
	KeyLessonNotes,
	KeyLessonCheckpoints,
	KeyPracticeChecks,
	KeyActiveLessonID,
}
