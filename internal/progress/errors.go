package progress

import "fmt"

// ErrUnknownLesson indicates an operation referenced a lesson ID that is not
// in the current catalog. Callers should re-resolve from the catalog.
type ErrUnknownLesson struct {
	ID string
}

func (e *ErrUnknownLesson) Error() string {
	return fmt.Sprintf("unknown lesson: %q", e.ID)
}

// ErrUnknownPractice indicates a practice item index outside a lesson's list.
// Index is zero-based; the message numbers items from 1.
type ErrUnknownPractice struct {
	LessonID string
	Index    int
	Count    int
}

func (e *ErrUnknownPractice) Error() string {
	return fmt.Sprintf("lesson %q has no practice item %d (it has %d)", e.LessonID, e.Index+1, e.Count)
}
