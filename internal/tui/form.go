package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// seedDrawerInputs loads the textinputs from the freshly opened editor
// session and puts focus on the title field.
func (m *appModel) seedDrawerInputs() {
	m.titleInput.SetValue(m.editor.values["title"])
	m.contentInput.SetValue(m.editor.values["content"])

	m.lockEnabled = false
	m.yearInput.SetValue("")
	m.monthInput.SetValue("")
	m.dayInput.SetValue("")
	m.hourInput.SetValue("")
	m.minuteInput.SetValue("")
	if raw := m.editor.values["lockUntil"]; raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			m.lockEnabled = true
			m.seedLockInputs(t.Local())
		}
	}

	m.formFocus = focusTitle
	m.applyInputFocus()
}

func (m *appModel) seedLockInputs(t time.Time) {
	m.yearInput.SetValue(fmt.Sprintf("%04d", t.Year()))
	m.monthInput.SetValue(fmt.Sprintf("%02d", int(t.Month())))
	m.dayInput.SetValue(fmt.Sprintf("%02d", t.Day()))
	m.hourInput.SetValue(fmt.Sprintf("%02d", t.Hour()))
	m.minuteInput.SetValue(fmt.Sprintf("%02d", t.Minute()))
}

// focusOrder lists the drawer's focusable slots for the current editor kind,
// in visual order. The date inputs only exist while the lock toggle is on.
func (m *appModel) focusOrder() []formFocus {
	switch m.editor.kind {
	case editorCreateLesson:
		return []formFocus{focusTitle, focusContent, focusSave, focusCancel}
	case editorCreateModule, editorEditModule:
		if m.lockEnabled {
			return []formFocus{focusTitle, focusLockToggle, focusYear, focusMonth, focusDay, focusHour, focusMinute, focusSave, focusCancel}
		}
		return []formFocus{focusTitle, focusLockToggle, focusSave, focusCancel}
	}
	return nil
}

func (m *appModel) cycleFocus(dir int) {
	order := m.focusOrder()
	if len(order) == 0 {
		return
	}
	cur := 0
	for i, f := range order {
		if f == m.formFocus {
			cur = i
			break
		}
	}
	cur = (cur + dir + len(order)) % len(order)
	m.formFocus = order[cur]
	m.applyInputFocus()
}

func (m *appModel) applyInputFocus() {
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.yearInput.Blur()
	m.monthInput.Blur()
	m.dayInput.Blur()
	m.hourInput.Blur()
	m.minuteInput.Blur()

	switch m.formFocus {
	case focusTitle:
		m.titleInput.Focus()
	case focusContent:
		m.contentInput.Focus()
	case focusYear:
		m.yearInput.Focus()
	case focusMonth:
		m.monthInput.Focus()
	case focusDay:
		m.dayInput.Focus()
	case focusHour:
		m.hourInput.Focus()
	case focusMinute:
		m.minuteInput.Focus()
	}
}

// updateDrawerInputs routes a message to the focused textinput and mirrors
// the resulting values into the editor session (which re-validates).
func (m *appModel) updateDrawerInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.formFocus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	case focusYear:
		m.yearInput, cmd = m.yearInput.Update(msg)
	case focusMonth:
		m.monthInput, cmd = m.monthInput.Update(msg)
	case focusDay:
		m.dayInput, cmd = m.dayInput.Update(msg)
	case focusHour:
		m.hourInput, cmd = m.hourInput.Update(msg)
	case focusMinute:
		m.minuteInput, cmd = m.minuteInput.Update(msg)
	default:
		return nil
	}
	m.mirrorFields()
	return cmd
}

// mirrorFields pushes the current input values into the editor session.
func (m *appModel) mirrorFields() {
	m.editor.setField("title", m.titleInput.Value())
	if m.editor.kind == editorCreateLesson {
		m.editor.setField("content", m.contentInput.Value())
	} else {
		m.editor.setField("lockUntil", composeLockUntil(
			m.lockEnabled,
			m.yearInput.Value(), m.monthInput.Value(), m.dayInput.Value(),
			m.hourInput.Value(), m.minuteInput.Value(),
		))
	}
}

func (m *appModel) toggleLock() {
	m.lockEnabled = !m.lockEnabled
	if m.lockEnabled && strings.TrimSpace(m.yearInput.Value()) == "" {
		// Match the web client: enabling the lock seeds the picker with now.
		m.seedLockInputs(time.Now())
	}
	m.mirrorFields()
}

// composeLockUntil folds the date/time inputs into one RFC 3339 value for
// validation and submission. Anything unparsable comes back as a
// non-timestamp string so the field validator flags it as "Invalid date".
func composeLockUntil(enabled bool, y, mo, d, h, mi string) string {
	if !enabled {
		return ""
	}
	yi, err1 := strconv.Atoi(strings.TrimSpace(y))
	moi, err2 := strconv.Atoi(strings.TrimSpace(mo))
	di, err3 := strconv.Atoi(strings.TrimSpace(d))
	if err1 != nil || err2 != nil || err3 != nil {
		return "incomplete"
	}
	hi, mii := 0, 0
	if s := strings.TrimSpace(h); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return "incomplete"
		}
		hi = v
	}
	if s := strings.TrimSpace(mi); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return "incomplete"
		}
		mii = v
	}
	if moi < 1 || moi > 12 || di < 1 || di > 31 || hi < 0 || hi > 23 || mii < 0 || mii > 59 {
		return "incomplete"
	}
	t := time.Date(yi, time.Month(moi), di, hi, mii, 0, 0, time.Local)
	// time.Date normalizes out-of-range days (Feb 30 -> Mar 2); reject drift.
	if t.Day() != di || int(t.Month()) != moi {
		return "incomplete"
	}
	return t.Format(time.RFC3339)
}
