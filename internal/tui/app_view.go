package tui

import (
	"fmt"
	"strings"
	"time"

	"campus-cli/internal/content"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	switch m.view {
	case viewCourse:
		return m.viewCourseScreen()
	default:
		return m.viewCoursesScreen()
	}
}

func (m appModel) headerLine() string {
	who := m.deps.Email
	if who == "" {
		who = "-"
	}
	return lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Campus  %s (%s)", who, m.deps.Role))
}

func (m appModel) viewCoursesScreen() string {
	body := m.coursesList.View()
	if m.coursesErr != "" {
		body = styleError().Render("Courses unavailable: "+m.coursesErr) +
			"\n" + styleMuted().Render("r: retry") + "\n\n" + body
	}
	footer := styleMuted().Render("enter: open course  /: filter  r: reload  q: quit")
	return strings.Join([]string{m.headerLine(), body, footer}, "\n\n")
}

func (m appModel) viewCourseScreen() string {
	switch m.activeModal() {
	case modalConfirmDelete:
		body := fmt.Sprintf("Delete module %q and all of its lessons?", m.pendingDeleteTitle)
		if m.deleteInFlight {
			body += "\n\n" + m.spin.View() + " deleting…"
		}
		return renderConfirmModal(m.width, "Delete Module", body, "Delete", "Cancel", m.confirmFocus)
	case modalCreateModule, modalEditModule, modalCreateLesson:
		return m.renderDrawer()
	}

	contentW := m.width - 4
	if contentW < 40 {
		contentW = 40
	}
	if contentW > 96 {
		contentW = 96
	}

	var sections []string

	title := m.tree.Course().Title
	if title == "" {
		title = m.selectedCourseID
	}
	head := lipgloss.NewStyle().Bold(true).Render(title)
	if m.fromCache {
		badge := "cached"
		if !m.cachedAt.IsZero() {
			badge = "cached " + m.cachedAt.Local().Format("Jan 2 15:04")
		}
		head += "  " + styleMuted().Render("["+badge+"]")
	}
	if m.loading {
		head += "  " + m.spin.View()
	}
	sections = append(sections, m.headerLine(), head)

	if desc := m.tree.Course().Description; desc != "" {
		sections = append(sections, renderMarkdown(desc, contentW))
	}

	if m.banner != "" {
		sections = append(sections, styleError().Width(contentW).Render(m.banner))
	}

	sections = append(sections, m.renderModules(contentW))
	sections = append(sections, m.footerHelp())

	return strings.Join(sections, "\n\n")
}

func (m appModel) renderModules(w int) string {
	mods := m.tree.Modules()

	if m.treeErr != "" && len(mods) == 0 {
		return styleError().Render("Course content unavailable.") + "\n" +
			styleMuted().Render(m.treeErr) + "\n" +
			styleMuted().Render("r: retry")
	}
	if len(mods) == 0 {
		if m.loading {
			return styleMuted().Render("Loading modules…")
		}
		return "No modules available yet"
	}

	now := time.Now()
	selected := lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
	lockStyle := lipgloss.NewStyle().Foreground(colorLock)

	var b strings.Builder
	for i, mod := range mods {
		glyph := "▸"
		if m.panels.expanded(i) {
			glyph = "▾"
		}
		line := fmt.Sprintf("%s %s", glyph, mod.Title)
		if mod.LockedAt(now) {
			line += "  " + lockStyle.Render("[locked until "+mod.LockUntil.Local().Format("Jan 2, 2006 15:04")+"]")
		}
		if i == m.cursor {
			line = selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if m.panels.expanded(i) {
			if len(mod.LessonRefs) == 0 {
				b.WriteString(styleMuted().Render("    No lessons available"))
				b.WriteString("\n")
			}
			for _, l := range mod.LessonRefs {
				b.WriteString(fmt.Sprintf("    • %s  %s\n", l.Title, styleMuted().Render(l.Content)))
			}
		}
	}
	if m.treeErr != "" {
		b.WriteString("\n")
		b.WriteString(styleError().Render("Refresh failed: " + m.treeErr))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) footerHelp() string {
	parts := []string{"enter/space: expand", "j/k: move"}
	if content.CanCreateModule(m.deps.Role) {
		parts = append(parts, "a: add module", "l: add lesson", "e: edit", "d: delete")
	}
	parts = append(parts, "r: reload", "esc: back", "q: quit")
	return styleMuted().Render(strings.Join(parts, "  "))
}
