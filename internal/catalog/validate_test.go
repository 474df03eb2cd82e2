package catalog

import (
	"errors"
	"strings"
	"testing"
)

func makeMinimalCourse() Course {
	return Course{
		ID:    "test",
		Title: "Test Course",
		Modules: []Module{
			{ID: "m1", Title: "One", Lessons: []Lesson{{ID: "a"}, {ID: "b"}}},
			{ID: "m2", Title: "Two", Lessons: []Lesson{{ID: "c"}}},
		},
	}
}

func TestValidate_MinimalCoursePasses(t *testing.T) {
	if err := Validate(makeMinimalCourse()); err != nil {
		t.Fatalf("expected valid course, got: %v", err)
	}
}

func TestValidate_SeedCoursePasses(t *testing.T) {
	if _, err := Load(); err != nil {
		t.Fatalf("seed course failed to load: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Course)
		want   string
	}{
		{
			name:   "no modules",
			mutate: func(c *Course) { c.Modules = nil },
			want:   "no modules",
		},
		{
			name:   "empty module",
			mutate: func(c *Course) { c.Modules[1].Lessons = nil },
			want:   `module "m2" has no lessons`,
		},
		{
			name:   "duplicate lesson across modules",
			mutate: func(c *Course) { c.Modules[1].Lessons[0].ID = "a" },
			want:   `duplicate lesson ID: "a"`,
		},
		{
			name:   "duplicate lesson within module",
			mutate: func(c *Course) { c.Modules[0].Lessons[1].ID = "a" },
			want:   `duplicate lesson ID: "a"`,
		},
		{
			name:   "duplicate module",
			mutate: func(c *Course) { c.Modules[1].ID = "m1" },
			want:   `duplicate module ID: "m1"`,
		},
		{
			name:   "empty lesson id",
			mutate: func(c *Course) { c.Modules[0].Lessons[0].ID = "" },
			want:   "empty ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := makeMinimalCourse()
			tt.mutate(&course)

			err := Validate(course)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrIntegrity) {
				t.Errorf("expected ErrIntegrity, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	course := makeMinimalCourse()
	course.Modules[1].Lessons = []Lesson{{ID: "a"}}
	course.Modules = append(course.Modules, Module{ID: "m3"})

	err := Validate(course)
	var integrity *ErrCatalogIntegrity
	if !errors.As(err, &integrity) {
		t.Fatalf("expected *ErrCatalogIntegrity, got %T", err)
	}
	if len(integrity.Problems) != 2 {
		t.Errorf("got %d problems, want 2: %v", len(integrity.Problems), integrity.Problems)
	}
}

func TestNew_RejectsInvalidCourse(t *testing.T) {
	course := makeMinimalCourse()
	course.Modules[0].Lessons = nil

	c, err := New(course)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if c != nil {
		t.Error("expected nil catalog on failure")
	}
}
