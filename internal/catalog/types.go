package catalog

// ScriptureRef points at a reading and where to open it.
type ScriptureRef struct {
	Reference    string `json:"ref"`
	ExternalLink string `json:"deepLink"`
}

// Lesson is a single study unit. Lesson IDs are unique across the whole course.
type Lesson struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Objective  string         `json:"objective"`
	Read       []ScriptureRef `json:"read"`
	Practice   []string       `json:"practice"`
	Checkpoint string         `json:"checkpoint"`
}

// Module groups lessons. Lesson order within a module is the study order.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Lessons []Lesson `json:"lessons"`
}

// Course is the authored curriculum document.
type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Tagline       string   `json:"tagline"`
	EstDays       int      `json:"estDays"`
	EstMinsPerDay int      `json:"estMinsPerDay"`
	Modules       []Module `json:"modules"`
}

// FlattenedLesson is a lesson positioned in the course-wide study order,
// annotated with the module that owns it.
type FlattenedLesson struct {
	Lesson
	ModuleID    string
	ModuleTitle string
	Index       int
}
