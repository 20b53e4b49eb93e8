package content

import "campus-cli/internal/model"

// Tree is the single in-memory source of truth for the course view: the
// course projection plus its ordered modules (with nested lessons). It is
// only ever mutated by total replacement: the client never hand-merges
// partial updates, so local state cannot drift from server state between
// fetches.
type Tree struct {
	course  model.Course
	modules []model.Module
}

func (t *Tree) Course() model.Course { return t.course }

// Modules returns the current module list. Callers treat it as read-only;
// all writes go through ReplaceModules.
func (t *Tree) Modules() []model.Module { return t.modules }

func (t *Tree) Len() int { return len(t.modules) }

func (t *Tree) ReplaceCourse(c model.Course) { t.course = c }

// ReplaceModules swaps in the freshly fetched list wholesale and reports the
// entity ids (modules and lessons) present in the new tree. Callers use the
// survivor set to force-close editor sessions whose target no longer exists.
func (t *Tree) ReplaceModules(modules []model.Module) map[string]bool {
	next := make([]model.Module, len(modules))
	copy(next, modules)
	surviving := make(map[string]bool, len(next))
	for i := range next {
		next[i].LessonRefs = append([]model.Lesson(nil), next[i].LessonRefs...)
		surviving[next[i].ID] = true
		for _, l := range next[i].LessonRefs {
			surviving[l.ID] = true
		}
	}
	t.modules = next
	return surviving
}

func (t *Tree) FindModule(id string) (model.Module, bool) {
	for _, m := range t.modules {
		if m.ID == id {
			return m, true
		}
	}
	return model.Module{}, false
}

func (t *Tree) FindLesson(id string) (model.Lesson, bool) {
	for _, m := range t.modules {
		for _, l := range m.LessonRefs {
			if l.ID == id {
				return l, true
			}
		}
	}
	return model.Lesson{}, false
}
