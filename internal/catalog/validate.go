package catalog

import "fmt"

// Validate performs all structural checks on a course.
// Returns an *ErrCatalogIntegrity describing every problem found, or nil if valid.
func Validate(course Course) error {
	var errs []string

	if len(course.Modules) == 0 {
		errs = append(errs, "course has no modules")
	}

	moduleIDs := make(map[string]bool, len(course.Modules))
	lessonOwner := make(map[string]string)

	for i, m := range course.Modules {
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("module %d has an empty ID", i))
		} else if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		if len(m.Lessons) == 0 {
			errs = append(errs, fmt.Sprintf("module %q has no lessons", m.ID))
		}

		for j, l := range m.Lessons {
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("module %q lesson %d has an empty ID", m.ID, j))
				continue
			}
			if owner, ok := lessonOwner[l.ID]; ok {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q (modules %q and %q)", l.ID, owner, m.ID))
				continue
			}
			lessonOwner[l.ID] = m.ID
		}
	}

	if len(errs) > 0 {
		return &ErrCatalogIntegrity{Problems: errs}
	}
	return nil
}
