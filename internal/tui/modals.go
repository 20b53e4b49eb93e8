package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 64 {
		w = 64
	}
	if w < 32 {
		w = 32
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(bodyW).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Width(bodyW).
		Padding(1, 1).
		Render(content)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func renderButton(label string, active bool) string {
	// Avoid borders for buttons: nesting bordered components inside a modal
	// shows background artifacts on some terminals.
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if active {
		st = st.
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	}
	return st.Render(label)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	confirm := renderButton(confirmLabel, focus == confirmFocusConfirm)
	cancel := renderButton(cancelLabel, focus == confirmFocusCancel)

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   y/n   esc/ctrl+g: cancel")

	content := strings.Join([]string{
		body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

func (m appModel) drawerTitle() string {
	switch m.editor.kind {
	case editorCreateModule:
		return "Add Module"
	case editorEditModule:
		return "Edit Module"
	case editorCreateLesson:
		return "Add Lesson"
	}
	return ""
}

// renderDrawer renders the create/edit form. As in the web client, a field's
// label is replaced by its validation message when the field is invalid.
func (m appModel) renderDrawer() string {
	bodyW := modalBodyWidth(m.width)
	var rows []string

	label := func(name, text string) string {
		if msg := m.editor.fieldError(name); msg != "" {
			return styleError().Render(text + " — " + msg)
		}
		return styleMuted().Render(text)
	}

	rows = append(rows,
		label("title", m.fieldLabel("title")),
		renderInputLine(bodyW, m.titleInput.View()),
	)

	switch m.editor.kind {
	case editorCreateLesson:
		rows = append(rows,
			"",
			label("content", m.fieldLabel("content")),
			renderInputLine(bodyW, m.contentInput.View()),
		)

	case editorCreateModule, editorEditModule:
		toggle := "[ ] Lock Until"
		if m.lockEnabled {
			toggle = "[x] Lock Until"
		}
		if m.formFocus == focusLockToggle {
			toggle = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Render(toggle)
		}
		if msg := m.editor.fieldError("lockUntil"); msg != "" {
			toggle += "  " + styleError().Render(msg)
		}
		rows = append(rows, "", toggle)

		if m.lockEnabled {
			date := lipgloss.JoinHorizontal(lipgloss.Top,
				m.yearInput.View(), " - ",
				m.monthInput.View(), " - ",
				m.dayInput.View(), "   ",
				m.hourInput.View(), " : ",
				m.minuteInput.View(),
			)
			rows = append(rows, date)
		}
	}

	if m.editor.banner != "" {
		rows = append(rows, "", styleError().Width(bodyW).Render(m.editor.banner))
	}

	saveLabel := m.drawerTitle()
	if m.editor.submitting {
		saveLabel = m.spin.View() + " " + saveLabel
	}
	save := renderButton(saveLabel, m.formFocus == focusSave)
	cancel := renderButton("Cancel", m.formFocus == focusCancel)
	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, save, sep, cancel))

	help := "tab: focus   enter: save   esc/ctrl+g: cancel"
	if m.editor.submitting {
		help = "saving…"
	}
	rows = append(rows, "", styleMuted().Width(bodyW).Render(help))

	return renderModalBox(m.width, m.drawerTitle(), strings.Join(rows, "\n"))
}

func (m appModel) fieldLabel(name string) string {
	for _, sp := range m.editor.specs {
		if sp.Name == name {
			return sp.Label
		}
	}
	return name
}
