package tui

import (
	"time"

	"campus-cli/internal/content"
	"campus-cli/internal/gateway"
	"campus-cli/internal/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.editor.submitting || m.deleteInFlight {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case coursesFetchedMsg:
		if !m.coursesGuard.Current(msg.seq) {
			return m, nil
		}
		if msg.err != "" {
			m.coursesErr = msg.err
			return m, nil
		}
		m.coursesErr = ""
		m.setCourses(msg.courses)
		return m, nil

	case courseFetchedMsg:
		if m.view != viewCourse || !m.courseGuard.Current(msg.seq) {
			return m, nil
		}
		if msg.err != "" {
			// The modules fetch carries the view's error state; a failed
			// meta fetch alone keeps whatever title we already have.
			return m, nil
		}
		m.tree.ReplaceCourse(msg.course)
		return m, nil

	case modulesFetchedMsg:
		if m.view != viewCourse || !m.modulesGuard.Current(msg.seq) {
			return m, nil
		}
		m.loading = false
		if msg.err != "" {
			m.treeErr = msg.err
			return m, nil
		}
		m.treeErr = ""
		m.fromCache = false
		surviving := m.tree.ReplaceModules(msg.modules)
		m.editor.closeIfStale(surviving)
		if m.cursor >= m.tree.Len() {
			m.cursor = m.tree.Len() - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, m.saveCacheCmd(m.tree.Course(), m.tree.Modules())

	case moduleMutationDoneMsg:
		return m.handleMutationDone(msg.res.Result)

	case lessonMutationDoneMsg:
		return m.handleMutationDone(msg.res.Result)

	case deleteDoneMsg:
		if !m.deleteInFlight {
			return m, nil
		}
		m.clearPendingDelete()
		if !msg.res.OK {
			m.banner = msg.res.ErrorMessage
			return m, nil
		}
		return m, m.fetchModulesCmd(m.selectedCourseID)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.view == viewCourses && m.activeModal() == modalNone {
		var cmd tea.Cmd
		m.coursesList, cmd = m.coursesList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMutationDone applies a create/update outcome to the editor session.
// Success closes the drawer and triggers exactly one refetch; the created
// entity becomes visible only once the authoritative list lands (no
// optimistic insertion). Failure keeps the drawer open with the user's
// values and the server message attached.
func (m appModel) handleMutationDone(res gateway.Result) (tea.Model, tea.Cmd) {
	if m.view != viewCourse || !m.editor.submitting {
		return m, nil
	}
	m.editor.finishSubmit(res)
	if res.OK {
		m.loading = true
		return m, tea.Batch(m.fetchModulesCmd(m.selectedCourseID), m.spin.Tick)
	}
	return m, nil
}

func (m appModel) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.banner = ""

	switch m.activeModal() {
	case modalConfirmDelete:
		return m.handleConfirmDeleteKey(k)
	case modalCreateModule, modalEditModule, modalCreateLesson:
		return m.handleDrawerKey(k)
	}

	switch m.view {
	case viewCourses:
		return m.handleCoursesKey(k)
	case viewCourse:
		return m.handleCourseKey(k)
	}
	return m, nil
}

func (m appModel) handleCoursesKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the "/" filter prompt is active, every key belongs to the list.
	if m.coursesList.SettingFilter() {
		var cmd tea.Cmd
		m.coursesList, cmd = m.coursesList.Update(k)
		return m, cmd
	}

	switch k.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m, m.fetchCoursesCmd()
	case "enter":
		if it, ok := m.coursesList.SelectedItem().(courseItem); ok {
			cmd := m.enterCourse(it.course)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.coursesList, cmd = m.coursesList.Update(k)
	return m, cmd
}

func (m appModel) handleCourseKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	role := m.deps.Role

	switch k.String() {
	case "q":
		return m, tea.Quit

	case "esc", "backspace":
		m.leaveCourse()
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(
			m.fetchCourseCmd(m.selectedCourseID),
			m.fetchModulesCmd(m.selectedCourseID),
			m.spin.Tick,
		)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.tree.Len()-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		mod, ok := m.selectedModule()
		if !ok {
			return m, nil
		}
		if role == model.RoleStudent && mod.LockedAt(time.Now()) {
			m.banner = "This module is locked until " + mod.LockUntil.Local().Format("Jan 2, 2006 15:04")
			return m, nil
		}
		m.panels.toggle(m.cursor)
		return m, nil

	case "a":
		if !content.CanCreateModule(role) {
			return m, nil
		}
		m.editor.openCreateModule(m.selectedCourseID)
		m.seedDrawerInputs()
		return m, nil

	case "l":
		mod, ok := m.selectedModule()
		if !ok || !content.CanCreateLesson(role) {
			return m, nil
		}
		m.editor.openCreateLesson(mod.ID)
		m.seedDrawerInputs()
		return m, nil

	case "e":
		mod, ok := m.selectedModule()
		if !ok || !content.CanEditModule(role) {
			return m, nil
		}
		m.editor.openEditModule(mod)
		m.seedDrawerInputs()
		return m, nil

	case "d":
		mod, ok := m.selectedModule()
		if !ok || !content.CanDeleteModule(role) {
			return m, nil
		}
		m.pendingDeleteID = mod.ID
		m.pendingDeleteTitle = mod.Title
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}
	return m, nil
}

func (m appModel) handleConfirmDeleteKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleteInFlight {
		// The request's outcome still needs to land; ignore input meanwhile.
		return m, nil
	}

	switch k.String() {
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil

	case "esc", "ctrl+g", "n":
		m.clearPendingDelete()
		return m, nil

	case "y":
		m.deleteInFlight = true
		return m, tea.Batch(m.deleteModuleCmd(m.pendingDeleteID), m.spin.Tick)

	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			m.deleteInFlight = true
			return m, tea.Batch(m.deleteModuleCmd(m.pendingDeleteID), m.spin.Tick)
		}
		m.clearPendingDelete()
		return m, nil
	}
	return m, nil
}

func (m appModel) handleDrawerKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor.submitting {
		// cancel is not legal while a submit is pending; swallow everything.
		return m, nil
	}

	switch k.String() {
	case "esc", "ctrl+g":
		m.editor.cancel()
		return m, nil

	case "tab", "down":
		m.cycleFocus(+1)
		return m, nil

	case "shift+tab", "up":
		m.cycleFocus(-1)
		return m, nil

	case " ":
		if m.formFocus == focusLockToggle {
			m.toggleLock()
			return m, nil
		}

	case "enter":
		switch m.formFocus {
		case focusCancel:
			m.editor.cancel()
			return m, nil
		case focusLockToggle:
			m.toggleLock()
			return m, nil
		default:
			return m.trySubmit()
		}
	}

	cmd := m.updateDrawerInputs(k)
	return m, cmd
}

func (m appModel) trySubmit() (tea.Model, tea.Cmd) {
	m.mirrorFields()
	if !m.editor.beginSubmit() {
		// Validation errors stay inline; the session state is unchanged.
		return m, nil
	}
	return m, tea.Batch(m.submitCmd(), m.spin.Tick)
}
