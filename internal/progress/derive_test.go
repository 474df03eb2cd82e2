package progress

import (
	"testing"

	"github.com/abhisek/disciple/internal/catalog"
)

func abcCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Course{
		ID: "abc",
		Modules: []catalog.Module{
			{ID: "m", Lessons: []catalog.Lesson{{ID: "A"}, {ID: "B"}, {ID: "C"}}},
		},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}

func stateWith(completed ...string) State {
	st := NewState()
	for _, id := range completed {
		st.CompletedLessons[id] = true
	}
	return st
}

func TestFirstIncomplete(t *testing.T) {
	c := abcCatalog(t)

	tests := []struct {
		name      string
		completed []string
		want      string
	}{
		{"none complete", nil, "A"},
		{"first complete", []string{"A"}, "B"},
		{"gap", []string{"A", "C"}, "B"},
		{"only last incomplete", []string{"A", "B"}, "C"},
		{"all complete wraps to first", []string{"A", "B", "C"}, "A"},
	}

	for _, tt := range tests {
		got := ResolveActiveLesson(stateWith(tt.completed...), c)
		if got.ID != tt.want {
			t.Errorf("%s: ResolveActiveLesson = %q, want %q", tt.name, got.ID, tt.want)
		}
	}
}

func TestResolveActiveLesson_ExplicitSelection(t *testing.T) {
	c := abcCatalog(t)

	st := stateWith("A")
	st.ActiveLessonID = "C"
	if got := ResolveActiveLesson(st, c); got.ID != "C" {
		t.Errorf("got %q, want C", got.ID)
	}

	st.ActiveLessonID = "gone"
	if got := ResolveActiveLesson(st, c); got.ID != "B" {
		t.Errorf("stale selection: got %q, want B", got.ID)
	}
}

func TestCompletionPercentage(t *testing.T) {
	c := abcCatalog(t)

	tests := []struct {
		completed []string
		want      int
	}{
		{nil, 0},
		{[]string{"A"}, 33},
		{[]string{"A", "B"}, 67},
		{[]string{"A", "B", "C"}, 100},
		{[]string{"A", "stale"}, 33},
	}

	for _, tt := range tests {
		got := CompletionPercentage(stateWith(tt.completed...), c)
		if got != tt.want {
			t.Errorf("completed %v: got %d%%, want %d%%", tt.completed, got, tt.want)
		}
	}
}

func TestCompletionPercentage_FalseEntriesIgnored(t *testing.T) {
	c := abcCatalog(t)
	st := NewState()
	st.CompletedLessons["A"] = false
	if got := CompletionPercentage(st, c); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		n, total, want int
	}{
		{1, 6, 17},
		{1, 8, 13}, // 12.5 rounds up
		{3, 8, 38}, // 37.5 rounds up
		{1, 3, 33},
		{0, 5, 0},
		{5, 5, 100},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := roundPercent(tt.n, tt.total); got != tt.want {
			t.Errorf("roundPercent(%d, %d) = %d, want %d", tt.n, tt.total, got, tt.want)
		}
	}
}

func TestCompletionPercentage_Bounds(t *testing.T) {
	c := abcCatalog(t)
	ids := []string{"A", "B", "C"}

	// Every subset of the catalog.
	for mask := 0; mask < 1<<len(ids); mask++ {
		var completed []string
		for i, id := range ids {
			if mask&(1<<i) != 0 {
				completed = append(completed, id)
			}
		}
		got := CompletionPercentage(stateWith(completed...), c)
		if got < 0 || got > 100 {
			t.Errorf("subset %v: %d out of range", completed, got)
		}
		if (got == 100) != (len(completed) == len(ids)) {
			t.Errorf("subset %v: got %d, 100 iff all complete", completed, got)
		}
	}
}

func TestNeighbor(t *testing.T) {
	c := abcCatalog(t)
	st := NewState()
	st.ActiveLessonID = "B"

	if fl, ok := Neighbor(st, c, Next); !ok || fl.ID != "C" {
		t.Errorf("next = (%q, %v), want (C, true)", fl.ID, ok)
	}
	if fl, ok := Neighbor(st, c, Previous); !ok || fl.ID != "A" {
		t.Errorf("previous = (%q, %v), want (A, true)", fl.ID, ok)
	}

	st.ActiveLessonID = "A"
	if _, ok := Neighbor(st, c, Previous); ok {
		t.Error("expected no previous lesson at start")
	}
	st.ActiveLessonID = "C"
	if _, ok := Neighbor(st, c, Next); ok {
		t.Error("expected no next lesson at end")
	}
}

func TestModuleCompletion(t *testing.T) {
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	st := stateWith("m1l1", "m1l2", "m1l3", "m2l1")

	sums := ModuleCompletion(st, c)
	if len(sums) != 5 {
		t.Fatalf("got %d modules, want 5", len(sums))
	}
	if sums[0].Completed != 3 || sums[0].Percent() != 100 {
		t.Errorf("module 1 = %+v", sums[0])
	}
	if sums[1].Completed != 1 || sums[1].Percent() != 33 {
		t.Errorf("module 2 = %+v", sums[1])
	}
	if sums[4].Completed != 0 || sums[4].Total != 3 {
		t.Errorf("module 5 = %+v", sums[4])
	}
	if got := CompletionPercentage(st, c); got != 27 {
		t.Errorf("course completion = %d, want 27", got)
	}
}

func TestDirectionString(t *testing.T) {
	if Next.String() != "next" || Previous.String() != "previous" || Direction(9).String() != "unknown" {
		t.Error("unexpected Direction strings")
	}
}
