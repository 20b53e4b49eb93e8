package model

import "time"

// Role is the session role resolved by the server at sign-in. The client only
// uses it to gate which affordances are shown; the server is the authority.
type Role string

const (
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTeacher:
		return RoleTeacher, true
	case RoleStudent:
		return RoleStudent, true
	}
	return "", false
}

// Course is a read-only projection of the server-owned course record.
type Course struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Module struct {
	ID        string     `json:"_id"`
	CourseRef string     `json:"courseRef"`
	Title     string     `json:"title"`
	LockUntil *time.Time `json:"lockUntil,omitempty"`

	LessonRefs []Lesson `json:"lessonRefs,omitempty"`
}

// LockedAt reports whether the module is time-locked at the given instant.
// This is a display gate for Students; enforcement is a server concern.
func (m Module) LockedAt(now time.Time) bool {
	return m.LockUntil != nil && m.LockUntil.After(now)
}

type Lesson struct {
	ID        string `json:"_id"`
	ModuleRef string `json:"moduleRef"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

// ModuleInput is the client-side payload for creating or updating a module.
type ModuleInput struct {
	CourseRef string     `json:"courseRef"`
	Title     string     `json:"title"`
	LockUntil *time.Time `json:"lockUntil,omitempty"`
}

type LessonInput struct {
	ModuleRef string `json:"moduleRef"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}
