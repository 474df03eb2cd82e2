package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_SeedCourse(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	course := c.Course()
	if course.ID != "jesus-foundations" {
		t.Errorf("course id = %q, want %q", course.ID, "jesus-foundations")
	}
	if len(course.Modules) != 5 {
		t.Errorf("got %d modules, want 5", len(course.Modules))
	}
	if c.Len() != 15 {
		t.Errorf("got %d lessons, want 15", c.Len())
	}

	first := c.At(0)
	if first.ID != "m1l1" || first.ModuleID != "m1" {
		t.Errorf("first lesson = %s/%s, want m1/m1l1", first.ModuleID, first.ID)
	}
	if len(first.Read) != 2 || first.Read[0].Reference == "" || first.Read[0].ExternalLink == "" {
		t.Errorf("first lesson readings not decoded: %+v", first.Read)
	}
	if first.Checkpoint == "" {
		t.Error("first lesson checkpoint is empty")
	}

	last := c.At(c.Len() - 1)
	if last.ID != "m5l3" {
		t.Errorf("last lesson = %q, want m5l3", last.ID)
	}
}

func TestFlatten_OrderAndDeterminism(t *testing.T) {
	c, err := New(makeMinimalCourse())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	a := Flatten(c)
	b := Flatten(c)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Flatten is not deterministic")
	}

	total := 0
	for _, m := range c.Modules() {
		total += len(m.Lessons)
	}
	if len(a) != total {
		t.Fatalf("flattened length = %d, want %d", len(a), total)
	}

	want := []struct{ id, module string }{
		{"a", "m1"}, {"b", "m1"}, {"c", "m2"},
	}
	for i, w := range want {
		if a[i].ID != w.id || a[i].ModuleID != w.module || a[i].Index != i {
			t.Errorf("flat[%d] = {%s %s %d}, want {%s %s %d}",
				i, a[i].ID, a[i].ModuleID, a[i].Index, w.id, w.module, i)
		}
	}
	if a[2].ModuleTitle != "Two" {
		t.Errorf("module title = %q, want %q", a[2].ModuleTitle, "Two")
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := New(makeMinimalCourse())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	fl, ok := c.Lesson("c")
	if !ok {
		t.Fatal("expected lesson c")
	}
	if fl.Index != 2 {
		t.Errorf("index = %d, want 2", fl.Index)
	}
	if _, ok := c.Lesson("nope"); ok {
		t.Error("expected lookup miss for unknown id")
	}
	if b, _ := c.Lesson("b"); b.Index != 1 || c.At(1).ID != "b" {
		t.Errorf("index of b = %d, At(1) = %q", b.Index, c.At(1).ID)
	}
	if !c.Has("a") || c.Has("") {
		t.Error("Has mismatch")
	}
}

func TestCatalog_ImmutableAccessors(t *testing.T) {
	c, err := New(makeMinimalCourse())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	mods := c.Modules()
	mods[0].Lessons[0].ID = "mutated"
	lessons := c.Lessons()
	lessons[0].ID = "mutated"

	if c.At(0).ID != "a" {
		t.Errorf("catalog mutated through accessor: %q", c.At(0).ID)
	}
	if c.Modules()[0].Lessons[0].ID != "a" {
		t.Error("modules mutated through accessor")
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"invalid json", `{"id":`, "invalid JSON"},
		{"missing modules", `{"id":"x","title":"X"}`, "schema validation failed"},
		{"wrong type", `{"id":"x","title":"X","modules":"nope"}`, "schema validation failed"},
		{"lesson without title", `{"id":"x","title":"X","modules":[{"id":"m","title":"M","lessons":[{"id":"l"}]}]}`, "schema validation failed"},
		{"empty catalog", `{"id":"x","title":"X","modules":[]}`, "no modules"},
		{"empty module", `{"id":"x","title":"X","modules":[{"id":"m","title":"M","lessons":[]}]}`, "has no lessons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrIntegrity) {
				t.Errorf("expected ErrIntegrity, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "course.json")
	doc := `{"id":"x","title":"X","modules":[{"id":"m","title":"M","lessons":[{"id":"l1","title":"L1","read":[{"ref":"John 3"}]}]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if c.Len() != 1 || c.At(0).Read[0].Reference != "John 3" {
		t.Errorf("unexpected catalog: %s", c)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
