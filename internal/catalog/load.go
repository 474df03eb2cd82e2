package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed course.json
var seedCourse []byte

// Load returns the built-in course.
func Load() (*Catalog, error) {
	return Parse(seedCourse)
}

// LoadFile reads and parses an authored course document from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a course document, checks it against the course schema and
// validates it. Any failure is reported as *ErrCatalogIntegrity.
func Parse(raw []byte) (*Catalog, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrCatalogIntegrity{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledCourseSchema()
	if err != nil {
		return nil, fmt.Errorf("compile course schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &ErrCatalogIntegrity{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var course Course
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&course); err != nil {
		return nil, &ErrCatalogIntegrity{Err: fmt.Errorf("decode course: %w", err)}
	}

	return New(course)
}
