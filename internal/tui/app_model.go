package tui

import (
	"context"
	"time"

	"campus-cli/internal/content"
	"campus-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appModel struct {
	deps Deps

	width  int
	height int

	view view

	coursesList list.Model
	coursesErr  string

	// Course view state. All of it is pure client lifecycle, reset when the
	// user navigates back to the course picker.
	selectedCourseID string
	tree             content.Tree
	treeErr          string
	loading          bool
	fromCache        bool
	cachedAt         time.Time
	cursor           int
	panels           panelState
	editor           editorSession

	// Delete confirmation is not an editor session (no fields), just a
	// pending target plus button focus.
	pendingDeleteID    string
	pendingDeleteTitle string
	confirmFocus       confirmModalFocus
	deleteInFlight     bool

	// Drawer inputs. Field values live in the editor session; these carry
	// cursor/rendering state and are mirrored into the session on each change.
	titleInput   textinput.Model
	contentInput textinput.Model
	yearInput    textinput.Model
	monthInput   textinput.Model
	dayInput     textinput.Model
	hourInput    textinput.Model
	minuteInput  textinput.Model
	lockEnabled  bool
	formFocus    formFocus

	spin spinner.Model

	// banner is a dismissible view-level error (failed delete, locked module
	// notice). Cleared on the next keypress.
	banner string

	// One guard per fetched slot; late responses lose.
	coursesGuard content.FetchGuard
	courseGuard  content.FetchGuard
	modulesGuard content.FetchGuard
}

type courseItem struct {
	course model.Course
}

func (c courseItem) Title() string       { return c.course.Title }
func (c courseItem) Description() string { return c.course.ID }
func (c courseItem) FilterValue() string { return c.course.Title }

func newAppModel(deps Deps) appModel {
	m := appModel{
		deps:   deps,
		view:   viewCourses,
		panels: panelState{},
	}

	delegate := list.NewDefaultDelegate()
	m.coursesList = list.New([]list.Item{}, delegate, 0, 0)
	m.coursesList.Title = "Courses"
	m.coursesList.SetFilteringEnabled(true)
	m.coursesList.SetShowFilter(true)

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Title"
	// No hard CharLimit on titles: the 200-rune rule is a validation concern
	// and must surface as a field error, not as silently dropped keystrokes.
	m.titleInput.CharLimit = 512
	m.titleInput.Width = 40

	m.contentInput = textinput.New()
	m.contentInput.Placeholder = "https://…"
	m.contentInput.CharLimit = 512
	m.contentInput.Width = 40

	m.yearInput = textinput.New()
	m.yearInput.Placeholder = "YYYY"
	m.yearInput.CharLimit = 4
	m.yearInput.Width = 6
	m.monthInput = textinput.New()
	m.monthInput.Placeholder = "MM"
	m.monthInput.CharLimit = 2
	m.monthInput.Width = 4
	m.dayInput = textinput.New()
	m.dayInput.Placeholder = "DD"
	m.dayInput.CharLimit = 2
	m.dayInput.Width = 4
	m.hourInput = textinput.New()
	m.hourInput.Placeholder = "HH"
	m.hourInput.CharLimit = 2
	m.hourInput.Width = 4
	m.minuteInput = textinput.New()
	m.minuteInput.Placeholder = "MM"
	m.minuteInput.CharLimit = 2
	m.minuteInput.Width = 4

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCoursesCmd(), m.spin.Tick)
}

func (m *appModel) resize() {
	h := m.height - 4
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.coursesList.SetSize(w, h)
}

func (m *appModel) setCourses(courses []model.Course) {
	items := make([]list.Item, 0, len(courses))
	for _, c := range courses {
		items = append(items, courseItem{course: c})
	}
	m.coursesList.SetItems(items)
}

// enterCourse switches to the course view: cached tree first for instant
// paint, then the authoritative fetch.
func (m *appModel) enterCourse(c model.Course) tea.Cmd {
	m.view = viewCourse
	m.selectedCourseID = c.ID
	m.tree = content.Tree{}
	m.tree.ReplaceCourse(c)
	m.treeErr = ""
	m.loading = true
	m.fromCache = false
	m.cursor = 0
	m.panels = panelState{}
	m.editor = editorSession{}
	m.clearPendingDelete()

	if cached, err := m.deps.Cache.LoadTree(context.Background(), c.ID); err == nil {
		m.tree.ReplaceCourse(cached.Course)
		m.tree.ReplaceModules(cached.Modules)
		m.fromCache = true
		m.cachedAt = cached.FetchedAt
	}

	return tea.Batch(m.fetchCourseCmd(c.ID), m.fetchModulesCmd(c.ID), m.spin.Tick)
}

// leaveCourse returns to the course picker, resetting all course-view state
// and invalidating the guards so in-flight responses are discarded rather
// than applied to a torn-down view.
func (m *appModel) leaveCourse() {
	m.view = viewCourses
	m.selectedCourseID = ""
	m.tree = content.Tree{}
	m.treeErr = ""
	m.loading = false
	m.fromCache = false
	m.cursor = 0
	m.panels = panelState{}
	m.editor = editorSession{}
	m.clearPendingDelete()
	m.courseGuard.Invalidate()
	m.modulesGuard.Invalidate()
}

func (m *appModel) clearPendingDelete() {
	m.pendingDeleteID = ""
	m.pendingDeleteTitle = ""
	m.confirmFocus = confirmFocusConfirm
	m.deleteInFlight = false
}

func (m appModel) activeModal() modalKind {
	if m.pendingDeleteID != "" {
		return modalConfirmDelete
	}
	switch m.editor.kind {
	case editorCreateModule:
		return modalCreateModule
	case editorEditModule:
		return modalEditModule
	case editorCreateLesson:
		return modalCreateLesson
	}
	return modalNone
}

func (m appModel) selectedModule() (model.Module, bool) {
	mods := m.tree.Modules()
	if m.cursor < 0 || m.cursor >= len(mods) {
		return model.Module{}, false
	}
	return mods[m.cursor], true
}
