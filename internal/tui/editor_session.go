package tui

import (
	"time"

	"campus-cli/internal/gateway"
	"campus-cli/internal/model"
)

// editorSession is the state machine behind the create/edit drawer. At most
// one session is open at a time; opening a new one force-closes the previous
// session and discards its unsaved field changes. Edits work on a local copy
// of the entity's values; nothing touches the tree until the server confirms
// the mutation and the refetch lands.
type editorKind int

const (
	editorClosed editorKind = iota
	editorCreateModule
	editorCreateLesson
	editorEditModule
)

type editorSession struct {
	kind editorKind
	// targetID is the parent course id for create-module, the parent module
	// id for create-lesson, and the module id being edited for edit-module.
	targetID string

	specs     []gateway.FieldSpec
	values    map[string]string
	fieldErrs map[string]string

	submitting bool
	// banner is the remote mutation error attached after a failed submit.
	banner string
}

func (s *editorSession) open() bool { return s.kind != editorClosed }

func (s *editorSession) reset(kind editorKind, targetID string, specs []gateway.FieldSpec) {
	*s = editorSession{
		kind:     kind,
		targetID: targetID,
		specs:    specs,
		values:   map[string]string{},
	}
}

func (s *editorSession) openCreateModule(courseID string) {
	s.reset(editorCreateModule, courseID, gateway.ModuleFields())
}

func (s *editorSession) openCreateLesson(moduleID string) {
	s.reset(editorCreateLesson, moduleID, gateway.LessonFields())
}

// openEditModule preloads the form from a copy of the module's current
// values; edits must not write through to the tree.
func (s *editorSession) openEditModule(m model.Module) {
	s.reset(editorEditModule, m.ID, gateway.ModuleFields())
	s.values["title"] = m.Title
	if m.LockUntil != nil {
		s.values["lockUntil"] = m.LockUntil.Format(time.RFC3339)
	}
}

// setField records a field value and re-validates synchronously. Ignored
// while a submit is in flight so a late keystroke cannot change what was
// submitted.
func (s *editorSession) setField(name, value string) {
	if !s.open() || s.submitting {
		return
	}
	s.values[name] = value
	s.validate()
}

func (s *editorSession) validate() {
	errs := gateway.Validate(s.specs, s.values)
	if len(errs) == 0 {
		s.fieldErrs = nil
		return
	}
	s.fieldErrs = errs
}

func (s *editorSession) fieldError(name string) string {
	return s.fieldErrs[name]
}

// beginSubmit moves the session into the submitting state. It refuses while
// closed, while a submit is already pending (no duplicate submissions), and
// while any validation error is present.
func (s *editorSession) beginSubmit() bool {
	if !s.open() || s.submitting {
		return false
	}
	s.validate()
	if len(s.fieldErrs) > 0 {
		return false
	}
	s.submitting = true
	s.banner = ""
	return true
}

// finishSubmit applies the mutation outcome. Success closes the session;
// failure keeps it open with the values intact so the user can correct and
// resubmit.
func (s *editorSession) finishSubmit(res gateway.Result) {
	if !s.submitting {
		return
	}
	if res.OK {
		*s = editorSession{}
		return
	}
	s.submitting = false
	s.banner = res.ErrorMessage
	if len(res.FieldErrors) > 0 {
		s.fieldErrs = res.FieldErrors
	}
}

// cancel closes the session, discarding field changes. Not legal while
// submitting: the in-flight request's outcome still needs to be applied.
func (s *editorSession) cancel() bool {
	if !s.open() || s.submitting {
		return false
	}
	*s = editorSession{}
	return true
}

// closeIfStale force-closes the session when its target entity disappeared
// from the freshly replaced tree. Silent: the entity was presumably deleted
// elsewhere, so there is nothing actionable to tell the user. Create-module
// sessions target the course itself and are never stale.
func (s *editorSession) closeIfStale(surviving map[string]bool) bool {
	switch s.kind {
	case editorEditModule, editorCreateLesson:
		if !surviving[s.targetID] {
			*s = editorSession{}
			return true
		}
	}
	return false
}
