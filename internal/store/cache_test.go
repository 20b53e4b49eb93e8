package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-cli/internal/model"
)

func testTree() (model.Course, []model.Module) {
	lock := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	course := model.Course{ID: "course-1", Title: "Go 101", Description: "Learn Go."}
	modules := []model.Module{
		{
			ID: "mod-1", CourseRef: "course-1", Title: "Week 1",
			LessonRefs: []model.Lesson{
				{ID: "les-1", ModuleRef: "mod-1", Title: "Intro", Content: "https://x.test/v"},
			},
		},
		{ID: "mod-2", CourseRef: "course-1", Title: "Week 2", LockUntil: &lock},
	}
	return course, modules
}

func TestCacheMiss(t *testing.T) {
	t.Parallel()

	c := Cache{Dir: t.TempDir()}
	_, err := c.LoadTree(context.Background(), "course-404")
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("error = %v, want ErrCacheMiss", err)
	}
}

func TestSaveLoadTree(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := Cache{Dir: t.TempDir()}
	course, modules := testTree()

	if err := c.SaveTree(ctx, course, modules); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}

	got, err := c.LoadTree(ctx, "course-1")
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if got.Course.Title != "Go 101" {
		t.Fatalf("Course = %+v", got.Course)
	}
	if len(got.Modules) != 2 || got.Modules[0].LessonRefs[0].ID != "les-1" {
		t.Fatalf("Modules = %+v", got.Modules)
	}
	if got.Modules[1].LockUntil == nil || !got.Modules[1].LockUntil.Equal(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("LockUntil = %v", got.Modules[1].LockUntil)
	}
	if got.FetchedAt.IsZero() {
		t.Fatalf("FetchedAt not recorded")
	}
}

func TestSaveTreeReplacesRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := Cache{Dir: t.TempDir()}
	course, modules := testTree()

	if err := c.SaveTree(ctx, course, modules); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}
	if err := c.SaveTree(ctx, course, modules[:1]); err != nil {
		t.Fatalf("SaveTree second write: %v", err)
	}

	got, err := c.LoadTree(ctx, "course-1")
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if len(got.Modules) != 1 {
		t.Fatalf("cached row not replaced wholesale: %d modules", len(got.Modules))
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := Cache{Dir: t.TempDir()}
	course, modules := testTree()

	if err := c.SaveTree(ctx, course, modules); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := c.LoadTree(ctx, "course-1"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("error after Clear = %v, want ErrCacheMiss", err)
	}
}
