package progress

import "github.com/abhisek/disciple/internal/catalog"

// Direction selects which neighbour Advance moves to.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "unknown"
	}
}

// ModuleSummary is the completion tally for one module.
type ModuleSummary struct {
	ModuleID  string
	Title     string
	Completed int
	Total     int
}

// Percent returns the module's completion, rounded half up.
func (m ModuleSummary) Percent() int {
	return roundPercent(m.Completed, m.Total)
}

// CompletedCount returns the number of catalog lessons marked complete.
// Stale IDs are not counted.
func CompletedCount(st State, c *catalog.Catalog) int {
	n := 0
	for id, done := range st.CompletedLessons {
		if done && c.Has(id) {
			n++
		}
	}
	return n
}

// CompletionPercentage returns round(100 * completed / total) in [0, 100].
func CompletionPercentage(st State, c *catalog.Catalog) int {
	return roundPercent(CompletedCount(st, c), c.Len())
}

// FirstIncomplete returns the earliest lesson in study order that is not
// complete, or the first lesson if every lesson is complete.
func FirstIncomplete(st State, c *catalog.Catalog) catalog.FlattenedLesson {
	for i := 0; i < c.Len(); i++ {
		if fl := c.At(i); !st.CompletedLessons[fl.ID] {
			return fl
		}
	}
	return c.At(0)
}

// ResolveActiveLesson returns the explicitly selected lesson if it still
// exists in the catalog, and the first incomplete lesson otherwise.
func ResolveActiveLesson(st State, c *catalog.Catalog) catalog.FlattenedLesson {
	if st.ActiveLessonID != "" {
		if fl, ok := c.Lesson(st.ActiveLessonID); ok {
			return fl
		}
	}
	return FirstIncomplete(st, c)
}

// Neighbor returns the lesson next to the active one in direction d.
// ok is false at the ends of the course.
func Neighbor(st State, c *catalog.Catalog, d Direction) (catalog.FlattenedLesson, bool) {
	i := ResolveActiveLesson(st, c).Index
	switch d {
	case Next:
		i++
	case Previous:
		i--
	default:
		return catalog.FlattenedLesson{}, false
	}
	if i < 0 || i >= c.Len() {
		return catalog.FlattenedLesson{}, false
	}
	return c.At(i), true
}

// ModuleCompletion tallies completion per module, in catalog order.
func ModuleCompletion(st State, c *catalog.Catalog) []ModuleSummary {
	modules := c.Modules()
	out := make([]ModuleSummary, 0, len(modules))
	for _, m := range modules {
		sum := ModuleSummary{ModuleID: m.ID, Title: m.Title, Total: len(m.Lessons)}
		for _, l := range m.Lessons {
			if st.CompletedLessons[l.ID] {
				sum.Completed++
			}
		}
		out = append(out, sum)
	}
	return out
}

// roundPercent computes 100*n/total rounded half up, using integers only.
func roundPercent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*n + total) / (2 * total)
}
