package progress

import (
	"go.uber.org/zap"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/store"
)

// Store owns the learner's progress for one session. It is constructed once
// from a storage backend, mutated only through its methods, and writes every
// change through to the backend immediately.
//
// Storage is best effort: if the backend fails, the Store logs a warning,
// keeps working in memory and reports the failure through Degraded.
// Store is not safe for concurrent use.
type Store struct {
	catalog  *catalog.Catalog
	backend  store.Backend
	state    State
	logger   *zap.Logger
	degraded error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads progress from backend. It never fails: missing, unreadable or
// corrupt fields load as their empty defaults. A nil backend behaves as
// unavailable storage.
func Open(backend store.Backend, c *catalog.Catalog, opts ...Option) *Store {
	if backend == nil {
		backend = store.Unavailable{}
	}
	s := &Store{
		catalog: c,
		backend: backend,
		state:   NewState(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	for _, key := range allKeys {
		raw, ok, err := s.backend.Get(key)
		if err != nil {
			s.storageFailed("load", key, err)
			continue
		}
		if !ok {
			continue
		}
		if err := decodeField(&s.state, key, raw); err != nil {
			s.logger.Warn("discarding corrupt progress field",
				zap.String("key", key), zap.Error(err))
		}
	}
	s.logger.Debug("progress loaded",
		zap.Stringer("catalog", s.catalog),
		zap.Int("completed", CompletedCount(s.state, s.catalog)),
		zap.String("active", s.state.ActiveLessonID))
}

// Catalog returns the catalog this store tracks.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	return s.state.Clone()
}

// Degraded returns the first storage error seen this session, or nil if
// every read and write reached the backend.
func (s *Store) Degraded() error {
	return s.degraded
}

// ToggleLessonComplete flips the completion flag of lessonID. It never
// changes the active lesson.
func (s *Store) ToggleLessonComplete(lessonID string) (State, error) {
	if !s.catalog.Has(lessonID) {
		return State{}, &ErrUnknownLesson{ID: lessonID}
	}
	if s.state.CompletedLessons[lessonID] {
		delete(s.state.CompletedLessons, lessonID)
	} else {
		s.state.CompletedLessons[lessonID] = true
	}
	s.persist(KeyCompletedLessons)
	return s.Snapshot(), nil
}

// SetLessonNote replaces the note for lessonID. An empty text clears it.
func (s *Store) SetLessonNote(lessonID, text string) (State, error) {
	if !s.catalog.Has(lessonID) {
		return State{}, &ErrUnknownLesson{ID: lessonID}
	}
	setText(s.state.LessonNotes, lessonID, text)
	s.persist(KeyLessonNotes)
	return s.Snapshot(), nil
}

// SetLessonCheckpoint replaces the checkpoint response for lessonID.
// An empty text clears it.
func (s *Store) SetLessonCheckpoint(lessonID, text string) (State, error) {
	if !s.catalog.Has(lessonID) {
		return State{}, &ErrUnknownLesson{ID: lessonID}
	}
	setText(s.state.LessonCheckpoints, lessonID, text)
	s.persist(KeyLessonCheckpoints)
	return s.Snapshot(), nil
}

// TogglePractice ticks or unticks practice item index of lessonID.
func (s *Store) TogglePractice(lessonID string, index int) (State, error) {
	fl, ok := s.catalog.Lesson(lessonID)
	if !ok {
		return State{}, &ErrUnknownLesson{ID: lessonID}
	}
	if index < 0 || index >= len(fl.Practice) {
		return State{}, &ErrUnknownPractice{LessonID: lessonID, Index: index, Count: len(fl.Practice)}
	}
	key := PracticeKey(lessonID, index)
	if s.state.PracticeChecks[key] {
		delete(s.state.PracticeChecks, key)
	} else {
		s.state.PracticeChecks[key] = true
	}
	s.persist(KeyPracticeChecks)
	return s.Snapshot(), nil
}

// SetActiveLesson makes lessonID the active lesson.
func (s *Store) SetActiveLesson(lessonID string) (State, error) {
	if !s.catalog.Has(lessonID) {
		return State{}, &ErrUnknownLesson{ID: lessonID}
	}
	if s.state.ActiveLessonID != lessonID {
		s.state.ActiveLessonID = lessonID
		s.persist(KeyActiveLessonID)
	}
	return s.Snapshot(), nil
}

// ResolveActiveLesson returns the lesson to present. When no valid lesson
// is selected, the first incomplete lesson is selected and persisted, so
// that completing it does not move the learner elsewhere.
func (s *Store) ResolveActiveLesson() catalog.FlattenedLesson {
	fl := ResolveActiveLesson(s.state, s.catalog)
	if s.state.ActiveLessonID != fl.ID {
		s.state.ActiveLessonID = fl.ID
		s.persist(KeyActiveLessonID)
	}
	return fl
}

// Advance moves the active lesson one step in study order. At either end
// of the course it is a no-op and nothing is written.
func (s *Store) Advance(d Direction) (State, error) {
	fl, ok := Neighbor(s.state, s.catalog, d)
	if !ok {
		return s.Snapshot(), nil
	}
	s.state.ActiveLessonID = fl.ID
	s.persist(KeyActiveLessonID)
	return s.Snapshot(), nil
}

// CompletionPercentage returns the course completion for the current state.
func (s *Store) CompletionPercentage() int {
	return CompletionPercentage(s.state, s.catalog)
}

// Reset clears all progress and persists the empty state.
func (s *Store) Reset() State {
	s.state = NewState()
	for _, key := range allKeys {
		s.persist(key)
	}
	s.logger.Info("progress reset")
	return s.Snapshot()
}

// Close writes every field to the backend one last time.
func (s *Store) Close() {
	for _, key := range allKeys {
		s.persist(key)
	}
}

func (s *Store) persist(key string) {
	value, err := encodeField(s.state, key)
	if err != nil {
		s.logger.Error("encode progress field", zap.String("key", key), zap.Error(err))
		return
	}
	if key == KeyActiveLessonID && value == "" {
		err = s.backend.Delete(key)
	} else {
		err = s.backend.Set(key, value)
	}
	if err != nil {
		s.storageFailed("save", key, err)
	}
}

// storageFailed records a backend failure. Only the first one is logged at
// warn level; the session carries on in memory.
func (s *Store) storageFailed(op, key string, err error) {
	if s.degraded == nil {
		s.degraded = err
		s.logger.Warn("progress storage unavailable, continuing in memory",
			zap.String("op", op), zap.String("key", key), zap.Error(err))
		return
	}
	s.logger.Debug("progress storage failure",
		zap.String("op", op), zap.String("key", key), zap.Error(err))
}

func setText(m map[string]string, lessonID, text string) {
	if text == "" {
		delete(m, lessonID)
		return
	}
	m[lessonID] = text
}
