package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const courseSchemaURL = "schema://course.json"

// courseSchema describes the shape of an authored course document. It only
// checks structure; cross-record rules (unique IDs, non-empty modules) are
// enforced by Validate so that they are reported the same way for courses
// built in code.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":            map[string]any{"type": "string", "minLength": 1},
		"title":         map[string]any{"type": "string"},
		"tagline":       map[string]any{"type": "string"},
		"estDays":       map[string]any{"type": "integer", "minimum": 0},
		"estMinsPerDay": map[string]any{"type": "integer", "minimum": 0},
		"modules": map[string]any{
			"type":  "array",
			"items": moduleSchema,
		},
	},
	"required": []any{"id", "title", "modules"},
}

var moduleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":      map[string]any{"type": "string"},
		"title":   map[string]any{"type": "string"},
		"summary": map[string]any{"type": "string"},
		"lessons": map[string]any{
			"type":  "array",
			"items": lessonSchema,
		},
	},
	"required": []any{"id", "title", "lessons"},
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":        map[string]any{"type": "string"},
		"title":     map[string]any{"type": "string"},
		"objective": map[string]any{"type": "string"},
		"read": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ref":      map[string]any{"type": "string", "minLength": 1},
					"deepLink": map[string]any{"type": "string"},
				},
				"required":             []any{"ref"},
				"additionalProperties": false,
			},
		},
		"practice": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"checkpoint": map[string]any{"type": "string"},
	},
	"required": []any{"id", "title"},
}

var (
	compileOnce      sync.Once
	compiledCourse   *jsonschema.Schema
	compileCourseErr error
)

// compiledCourseSchema compiles the course schema on first use.
func compiledCourseSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so numbers have the types the compiler
		// expects from a parsed document.
		raw, err := json.Marshal(courseSchema)
		if err != nil {
			compileCourseErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileCourseErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(courseSchemaURL, doc); err != nil {
			compileCourseErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledCourse, compileCourseErr = c.Compile(courseSchemaURL)
	})
	return compiledCourse, compileCourseErr
}
