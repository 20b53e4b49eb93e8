package tui

import (
	"context"
	"time"

	"campus-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

const fetchTimeout = 15 * time.Second

func (m *appModel) fetchCoursesCmd() tea.Cmd {
	seq := m.coursesGuard.Next()
	client := m.deps.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		courses, err := client.FetchCourses(ctx)
		out := coursesFetchedMsg{seq: seq, courses: courses}
		if err != nil {
			out.err = err.Error()
		}
		return out
	}
}

func (m *appModel) fetchCourseCmd(courseID string) tea.Cmd {
	seq := m.courseGuard.Next()
	client := m.deps.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		course, err := client.FetchCourse(ctx, courseID)
		out := courseFetchedMsg{seq: seq, course: course}
		if err != nil {
			out.err = err.Error()
		}
		return out
	}
}

func (m *appModel) fetchModulesCmd(courseID string) tea.Cmd {
	seq := m.modulesGuard.Next()
	client := m.deps.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		modules, err := client.FetchModules(ctx, courseID)
		out := modulesFetchedMsg{seq: seq, modules: modules}
		if err != nil {
			out.err = err.Error()
		}
		return out
	}
}

// submitCmd runs the editor session's pending mutation through the gateway.
// The caller has already moved the session into the submitting state, which
// blocks a second submit until the completion message lands.
func (m *appModel) submitCmd() tea.Cmd {
	gw := m.deps.Gateway
	kind := m.editor.kind
	targetID := m.editor.targetID
	title := m.editor.values["title"]
	contentURL := m.editor.values["content"]
	lockRaw := m.editor.values["lockUntil"]

	switch kind {
	case editorCreateModule, editorEditModule:
		var lock *time.Time
		if lockRaw != "" {
			if t, err := time.Parse(time.RFC3339, lockRaw); err == nil {
				lock = &t
			}
		}
		in := model.ModuleInput{CourseRef: m.selectedCourseID, Title: title, LockUntil: lock}
		if kind == editorCreateModule {
			in.CourseRef = targetID
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
				defer cancel()
				return moduleMutationDoneMsg{res: gw.CreateModule(ctx, in)}
			}
		}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return moduleMutationDoneMsg{res: gw.UpdateModule(ctx, targetID, in)}
		}

	case editorCreateLesson:
		in := model.LessonInput{ModuleRef: targetID, Title: title, Content: contentURL}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			return lessonMutationDoneMsg{res: gw.CreateLesson(ctx, in)}
		}
	}
	return nil
}

func (m *appModel) deleteModuleCmd(moduleID string) tea.Cmd {
	gw := m.deps.Gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return deleteDoneMsg{moduleID: moduleID, res: gw.DeleteModule(ctx, moduleID)}
	}
}

// saveCacheCmd persists the freshly fetched tree off the update loop.
func (m *appModel) saveCacheCmd(course model.Course, modules []model.Module) tea.Cmd {
	cache := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		_ = cache.SaveTree(ctx, course, modules)
		return nil
	}
}
