package content

import (
	"testing"

	"campus-cli/internal/model"
)

func sampleModules() []model.Module {
	return []model.Module{
		{
			ID:        "mod-1",
			CourseRef: "course-1",
			Title:     "Getting Started",
			LessonRefs: []model.Lesson{
				{ID: "les-1", ModuleRef: "mod-1", Title: "Welcome", Content: "https://example.com/welcome"},
				{ID: "les-2", ModuleRef: "mod-1", Title: "Setup", Content: "https://example.com/setup"},
			},
		},
		{
			ID:        "mod-2",
			CourseRef: "course-1",
			Title:     "Advanced Topics",
		},
	}
}

func TestReplaceModulesReportsSurvivors(t *testing.T) {
	t.Parallel()

	var tr Tree
	surviving := tr.ReplaceModules(sampleModules())

	for _, id := range []string{"mod-1", "mod-2", "les-1", "les-2"} {
		if !surviving[id] {
			t.Fatalf("expected %q in surviving set, got %v", id, surviving)
		}
	}
	if surviving["mod-gone"] {
		t.Fatalf("unexpected id in surviving set")
	}
	if tr.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tr.Len())
	}
}

func TestReplaceModulesIsWholesale(t *testing.T) {
	t.Parallel()

	var tr Tree
	tr.ReplaceModules(sampleModules())

	// A refetch that drops a module must not leave any trace of it behind.
	surviving := tr.ReplaceModules([]model.Module{
		{ID: "mod-2", CourseRef: "course-1", Title: "Advanced Topics"},
	})

	if surviving["mod-1"] || surviving["les-1"] {
		t.Fatalf("stale ids survived replacement: %v", surviving)
	}
	if _, ok := tr.FindModule("mod-1"); ok {
		t.Fatalf("FindModule found module removed by replacement")
	}
	if _, ok := tr.FindLesson("les-1"); ok {
		t.Fatalf("FindLesson found lesson removed by replacement")
	}
	if got := tr.Len(); got != 1 {
		t.Fatalf("Len = %d, want 1", got)
	}
}

func TestReplaceModulesCopiesInput(t *testing.T) {
	t.Parallel()

	var tr Tree
	in := sampleModules()
	tr.ReplaceModules(in)

	in[0].Title = "mutated"
	in[0].LessonRefs[0].Title = "mutated"

	got, ok := tr.FindModule("mod-1")
	if !ok {
		t.Fatalf("FindModule(mod-1) not found")
	}
	if got.Title != "Getting Started" {
		t.Fatalf("tree shares module backing array with caller: Title = %q", got.Title)
	}
	if got.LessonRefs[0].Title != "Welcome" {
		t.Fatalf("tree shares lesson backing array with caller: Title = %q", got.LessonRefs[0].Title)
	}
}

func TestFindLesson(t *testing.T) {
	t.Parallel()

	var tr Tree
	tr.ReplaceModules(sampleModules())

	l, ok := tr.FindLesson("les-2")
	if !ok {
		t.Fatalf("FindLesson(les-2) not found")
	}
	if l.Title != "Setup" || l.ModuleRef != "mod-1" {
		t.Fatalf("FindLesson returned wrong lesson: %+v", l)
	}
	if _, ok := tr.FindLesson("nope"); ok {
		t.Fatalf("FindLesson found nonexistent lesson")
	}
}

func TestReplaceCourse(t *testing.T) {
	t.Parallel()

	var tr Tree
	tr.ReplaceCourse(model.Course{ID: "course-1", Title: "Go 101"})
	if got := tr.Course().Title; got != "Go 101" {
		t.Fatalf("Course().Title = %q, want %q", got, "Go 101")
	}
}
