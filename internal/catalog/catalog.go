package catalog

import (
	"fmt"
	"slices"
)

// Catalog is a validated, read-only course with its flattened study order
// precomputed. A *Catalog never changes after construction.
type Catalog struct {
	course Course
	flat   []FlattenedLesson
	byID   map[string]int
}

// New validates course and builds a Catalog from it.
func New(course Course) (*Catalog, error) {
	if err := Validate(course); err != nil {
		return nil, err
	}

	c := &Catalog{
		course: cloneCourse(course),
	}
	c.flat = Flatten(c)
	c.byID = make(map[string]int, len(c.flat))
	for i, fl := range c.flat {
		c.byID[fl.ID] = i
	}
	return c, nil
}

// Flatten returns every lesson in study order: modules in catalog order,
// then lessons in module order.
func Flatten(c *Catalog) []FlattenedLesson {
	var out []FlattenedLesson
	for _, m := range c.course.Modules {
		for _, l := range m.Lessons {
			out = append(out, FlattenedLesson{
				Lesson:      l,
				ModuleID:    m.ID,
				ModuleTitle: m.Title,
				Index:       len(out),
			})
		}
	}
	return out
}

// Course returns a copy of the underlying course document.
func (c *Catalog) Course() Course {
	return cloneCourse(c.course)
}

// Modules returns the modules in catalog order.
func (c *Catalog) Modules() []Module {
	return cloneCourse(c.course).Modules
}

// Lessons returns the flattened study order.
func (c *Catalog) Lessons() []FlattenedLesson {
	return slices.Clone(c.flat)
}

// Len returns the total number of lessons. Always at least one.
func (c *Catalog) Len() int {
	return len(c.flat)
}

// At returns the lesson at position i of the flattened order.
func (c *Catalog) At(i int) FlattenedLesson {
	return c.flat[i]
}

// Lesson looks up a lesson by ID.
func (c *Catalog) Lesson(id string) (FlattenedLesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return FlattenedLesson{}, false
	}
	return c.flat[i], true
}

// Has reports whether id names a lesson in this catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// String describes the catalog for logs.
func (c *Catalog) String() string {
	return fmt.Sprintf("%s (%d modules, %d lessons)", c.course.ID, len(c.course.Modules), len(c.flat))
}

func cloneCourse(in Course) Course {
	out := in
	out.Modules = make([]Module, len(in.Modules))
	for i, m := range in.Modules {
		m.Lessons = slices.Clone(m.Lessons)
		for j := range m.Lessons {
			m.Lessons[j].Read = slices.Clone(m.Lessons[j].Read)
			m.Lessons[j].Practice = slices.Clone(m.Lessons[j].Practice)
		}
		out.Modules[i] = m
	}
	return out
}
