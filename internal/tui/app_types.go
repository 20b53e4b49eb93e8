package tui

import (
	"campus-cli/internal/gateway"
	"campus-cli/internal/model"
)

type view int

const (
	viewCourses view = iota
	viewCourse
)

// Fetch completions carry the sequence number issued when the fetch started;
// the update loop drops any message whose seq is no longer current, so a
// late response can never repopulate a superseded or torn-down view.

type coursesFetchedMsg struct {
	seq     int
	courses []model.Course
	err     string
}

type courseFetchedMsg struct {
	seq    int
	course model.Course
	err    string
}

type modulesFetchedMsg struct {
	seq     int
	modules []model.Module
	err     string
}

type moduleMutationDoneMsg struct {
	res gateway.ModuleResult
}

type lessonMutationDoneMsg struct {
	res gateway.LessonResult
}

type deleteDoneMsg struct {
	moduleID string
	res      gateway.Result
}

type modalKind int

const (
	modalNone modalKind = iota
	modalCreateModule
	modalEditModule
	modalCreateLesson
	modalConfirmDelete
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// formFocus indexes the editor drawer's focusable slots in visual order:
// the field inputs first (per the entity's field specs, with lockUntil
// expanding to a toggle plus date/time inputs), then Save, then Cancel.
type formFocus int

const (
	focusTitle formFocus = iota
	focusContent
	focusLockToggle
	focusYear
	focusMonth
	focusDay
	focusHour
	focusMinute
	focusSave
	focusCancel
)
