package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campus-cli/internal/api"
	"campus-cli/internal/model"
)

type fakeTransport struct {
	createModuleCalls int
	createLessonCalls int
	updateModuleCalls int
	deleteModuleCalls int

	lastModuleInput model.ModuleInput
	lastLessonInput model.LessonInput
	lastModuleID    string

	err error
}

func (f *fakeTransport) CreateModule(ctx context.Context, in model.ModuleInput) (model.Module, error) {
	f.createModuleCalls++
	f.lastModuleInput = in
	if f.err != nil {
		return model.Module{}, f.err
	}
	return model.Module{ID: "mod-new", CourseRef: in.CourseRef, Title: in.Title, LockUntil: in.LockUntil}, nil
}

func (f *fakeTransport) CreateLesson(ctx context.Context, in model.LessonInput) (model.Lesson, error) {
	f.createLessonCalls++
	f.lastLessonInput = in
	if f.err != nil {
		return model.Lesson{}, f.err
	}
	return model.Lesson{ID: "les-new", ModuleRef: in.ModuleRef, Title: in.Title, Content: in.Content}, nil
}

func (f *fakeTransport) UpdateModule(ctx context.Context, moduleID string, in model.ModuleInput) (model.Module, error) {
	f.updateModuleCalls++
	f.lastModuleID = moduleID
	f.lastModuleInput = in
	if f.err != nil {
		return model.Module{}, f.err
	}
	return model.Module{ID: moduleID, CourseRef: in.CourseRef, Title: in.Title, LockUntil: in.LockUntil}, nil
}

func (f *fakeTransport) DeleteModule(ctx context.Context, moduleID string) error {
	f.deleteModuleCalls++
	f.lastModuleID = moduleID
	return f.err
}

func TestCreateModuleSuccess(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{}
	g := New(ft)

	res := g.CreateModule(context.Background(), model.ModuleInput{CourseRef: "course-1", Title: "Week 1"})
	if !res.OK {
		t.Fatalf("CreateModule failed: %+v", res.Result)
	}
	if res.Module.ID != "mod-new" {
		t.Fatalf("Module.ID = %q, want mod-new", res.Module.ID)
	}
	if ft.createModuleCalls != 1 {
		t.Fatalf("transport called %d times, want 1", ft.createModuleCalls)
	}
}

func TestCreateModuleValidationSkipsTransport(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{}
	g := New(ft)

	res := g.CreateModule(context.Background(), model.ModuleInput{CourseRef: "course-1"})
	if res.OK {
		t.Fatalf("empty title accepted")
	}
	if res.ErrorMessage != "" {
		t.Fatalf("validation failure set ErrorMessage = %q, want inline field errors only", res.ErrorMessage)
	}
	if res.FieldErrors["title"] != "Required" {
		t.Fatalf("FieldErrors = %v", res.FieldErrors)
	}
	if ft.createModuleCalls != 0 {
		t.Fatalf("transport invoked despite validation failure")
	}

	long := strings.Repeat("x", 201)
	res = g.CreateModule(context.Background(), model.ModuleInput{CourseRef: "course-1", Title: long})
	if res.FieldErrors["title"] != "Character limit exceeded" {
		t.Fatalf("FieldErrors = %v", res.FieldErrors)
	}
	if ft.createModuleCalls != 0 {
		t.Fatalf("transport invoked despite over-length title")
	}
}

func TestCreateModuleServerErrorNormalized(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{err: &api.StatusError{Code: 400, Message: "Server error"}}
	g := New(ft)

	res := g.CreateModule(context.Background(), model.ModuleInput{CourseRef: "course-1", Title: "Week 1"})
	if res.OK {
		t.Fatalf("server error reported as OK")
	}
	if res.ErrorMessage != "Server error" {
		t.Fatalf("ErrorMessage = %q, want server-provided message", res.ErrorMessage)
	}
}

func TestCreateModuleServerFieldErrorsSurface(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{err: &api.StatusError{
		Code:        422,
		Message:     "Validation failed",
		FieldErrors: map[string]string{"title": "Already taken"},
	}}
	g := New(ft)

	res := g.CreateModule(context.Background(), model.ModuleInput{CourseRef: "course-1", Title: "Week 1"})
	if res.OK {
		t.Fatalf("rejected mutation reported as OK")
	}
	if res.FieldErrors["title"] != "Already taken" {
		t.Fatalf("FieldErrors = %v", res.FieldErrors)
	}
}

func TestOpaqueErrorBecomesGenericMessage(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{err: errors.New("dial tcp: connection refused")}
	g := New(ft)

	res := g.DeleteModule(context.Background(), "mod-1")
	if res.OK {
		t.Fatalf("transport error reported as OK")
	}
	if res.ErrorMessage != "Request failed. Please try again." {
		t.Fatalf("ErrorMessage = %q", res.ErrorMessage)
	}
	if res.FieldErrors != nil {
		t.Fatalf("opaque failure produced field errors: %v", res.FieldErrors)
	}
}

func TestCreateLesson(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{}
	g := New(ft)

	res := g.CreateLesson(context.Background(), model.LessonInput{
		ModuleRef: "mod-1", Title: "Welcome", Content: "https://example.com/v",
	})
	if !res.OK {
		t.Fatalf("CreateLesson failed: %+v", res.Result)
	}
	if res.Lesson.ModuleRef != "mod-1" {
		t.Fatalf("Lesson = %+v", res.Lesson)
	}

	res = g.CreateLesson(context.Background(), model.LessonInput{ModuleRef: "mod-1", Title: "Welcome", Content: "bogus"})
	if res.OK || res.FieldErrors["content"] != "Invalid URL" {
		t.Fatalf("bad content URL not rejected: %+v", res.Result)
	}
	if ft.createLessonCalls != 1 {
		t.Fatalf("transport called %d times, want 1", ft.createLessonCalls)
	}
}

func TestUpdateModule(t *testing.T) {
	t.Parallel()

	ft := &fakeTransport{}
	g := New(ft)

	res := g.UpdateModule(context.Background(), "mod-7", model.ModuleInput{CourseRef: "course-1", Title: "Renamed"})
	if !res.OK {
		t.Fatalf("UpdateModule failed: %+v", res.Result)
	}
	if ft.lastModuleID != "mod-7" {
		t.Fatalf("transport got module id %q, want mod-7", ft.lastModuleID)
	}
	if res.Module.Title != "Renamed" {
		t.Fatalf("Module = %+v", res.Module)
	}
}
