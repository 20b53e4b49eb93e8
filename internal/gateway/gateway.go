package gateway

import (
	"context"
	"errors"
	"time"

	"campus-cli/internal/api"
	"campus-cli/internal/model"
)

// Transport is the server-side collaborator behind the gateway. api.Client
// implements it; tests substitute fakes.
type Transport interface {
	CreateModule(ctx context.Context, in model.ModuleInput) (model.Module, error)
	CreateLesson(ctx context.Context, in model.LessonInput) (model.Lesson, error)
	UpdateModule(ctx context.Context, moduleID string, in model.ModuleInput) (model.Module, error)
	DeleteModule(ctx context.Context, moduleID string) error
}

// Result is the discriminated outcome of a mutation. Callers never see a raw
// error or a panic from the gateway: either OK is set, or ErrorMessage (and
// possibly FieldErrors) explains the failure. There is no retry; creates are
// not idempotent, so the user resubmits manually.
type Result struct {
	OK           bool
	ErrorMessage string
	FieldErrors  map[string]string
}

type ModuleResult struct {
	Result
	Module model.Module
}

type LessonResult struct {
	Result
	Lesson model.Lesson
}

const genericFailure = "Request failed. Please try again."

type Gateway struct {
	transport Transport
}

func New(t Transport) *Gateway {
	return &Gateway{transport: t}
}

func (g *Gateway) CreateModule(ctx context.Context, in model.ModuleInput) ModuleResult {
	if errs := Validate(ModuleFields(), moduleValues(in)); len(errs) > 0 {
		return ModuleResult{Result: Result{FieldErrors: errs}}
	}
	m, err := g.transport.CreateModule(ctx, in)
	if err != nil {
		return ModuleResult{Result: normalize(err)}
	}
	return ModuleResult{Result: Result{OK: true}, Module: m}
}

func (g *Gateway) UpdateModule(ctx context.Context, moduleID string, in model.ModuleInput) ModuleResult {
	if errs := Validate(ModuleFields(), moduleValues(in)); len(errs) > 0 {
		return ModuleResult{Result: Result{FieldErrors: errs}}
	}
	m, err := g.transport.UpdateModule(ctx, moduleID, in)
	if err != nil {
		return ModuleResult{Result: normalize(err)}
	}
	return ModuleResult{Result: Result{OK: true}, Module: m}
}

func (g *Gateway) CreateLesson(ctx context.Context, in model.LessonInput) LessonResult {
	values := map[string]string{"title": in.Title, "content": in.Content}
	if errs := Validate(LessonFields(), values); len(errs) > 0 {
		return LessonResult{Result: Result{FieldErrors: errs}}
	}
	l, err := g.transport.CreateLesson(ctx, in)
	if err != nil {
		return LessonResult{Result: normalize(err)}
	}
	return LessonResult{Result: Result{OK: true}, Lesson: l}
}

func (g *Gateway) DeleteModule(ctx context.Context, moduleID string) Result {
	if err := g.transport.DeleteModule(ctx, moduleID); err != nil {
		return normalize(err)
	}
	return Result{OK: true}
}

func moduleValues(in model.ModuleInput) map[string]string {
	v := map[string]string{"title": in.Title}
	if in.LockUntil != nil {
		v["lockUntil"] = in.LockUntil.Format(time.RFC3339)
	}
	return v
}

// normalize converts a transport error into the failure arm of Result,
// preferring the server-provided message when one exists.
func normalize(err error) Result {
	var se *api.StatusError
	if errors.As(err, &se) {
		msg := se.Message
		if msg == "" {
			msg = genericFailure
		}
		return Result{ErrorMessage: msg, FieldErrors: se.FieldErrors}
	}
	return Result{ErrorMessage: genericFailure}
}
