package progress

import (
	"maps"
	"strconv"
)

// State is the learner's mutable progress through a course.
//
// Absent map entries read as false / empty string. Keys that do not name a
// lesson in the current catalog are kept but ignored by every query.
type State struct {
	CompletedLessons  map[string]bool
	LessonNotes       map[string]string
	LessonCheckpoints map[string]string
	// PracticeChecks records ticked practice items, keyed by PracticeKey.
	PracticeChecks map[string]bool
	// ActiveLessonID is empty when no lesson was explicitly selected.
	ActiveLessonID string
}

// NewState returns an empty state.
func NewState() State {
	return State{
		CompletedLessons:  make(map[string]bool),
		LessonNotes:       make(map[string]string),
		LessonCheckpoints: make(map[string]string),
		PracticeChecks:    make(map[string]bool),
	}
}

// Clone returns a deep copy. Nil maps become empty maps.
func (s State) Clone() State {
	out := NewState()
	maps.Copy(out.CompletedLessons, s.CompletedLessons)
	maps.Copy(out.LessonNotes, s.LessonNotes)
	maps.Copy(out.LessonCheckpoints, s.LessonCheckpoints)
	maps.Copy(out.PracticeChecks, s.PracticeChecks)
	out.ActiveLessonID = s.ActiveLessonID
	return out
}

// IsComplete reports whether lessonID is marked complete.
func (s State) IsComplete(lessonID string) bool {
	return s.CompletedLessons[lessonID]
}

// Note returns the note for lessonID, or "".
func (s State) Note(lessonID string) string {
	return s.LessonNotes[lessonID]
}

// Checkpoint returns the checkpoint response for lessonID, or "".
func (s State) Checkpoint(lessonID string) string {
	return s.LessonCheckpoints[lessonID]
}

// PracticeChecked reports whether practice item index of lessonID is ticked.
func (s State) PracticeChecked(lessonID string, index int) bool {
	return s.PracticeChecks[PracticeKey(lessonID, index)]
}

// PracticeKey builds the PracticeChecks key for a lesson's practice item.
func PracticeKey(lessonID string, index int) string {
	return lessonID + "-" + strconv.Itoa(index)
}
