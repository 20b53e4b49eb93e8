package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	if r, ok := ParseRole("Teacher"); !ok || r != RoleTeacher {
		t.Fatalf("ParseRole(Teacher) = %v, %v", r, ok)
	}
	if r, ok := ParseRole("Student"); !ok || r != RoleStudent {
		t.Fatalf("ParseRole(Student) = %v, %v", r, ok)
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatalf("ParseRole accepted unknown role")
	}
	if _, ok := ParseRole(""); ok {
		t.Fatalf("ParseRole accepted empty role")
	}
}

func TestLockedAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	var m Module
	if m.LockedAt(now) {
		t.Fatalf("module without lock reports locked")
	}

	future := now.Add(time.Hour)
	m.LockUntil = &future
	if !m.LockedAt(now) {
		t.Fatalf("future lock not reported")
	}

	past := now.Add(-time.Hour)
	m.LockUntil = &past
	if m.LockedAt(now) {
		t.Fatalf("expired lock still reported")
	}

	// Boundary: a lock equal to now has elapsed.
	at := now
	m.LockUntil = &at
	if m.LockedAt(now) {
		t.Fatalf("lock at exactly now reported as locked")
	}
}

func TestModuleJSONUsesMongoIDs(t *testing.T) {
	t.Parallel()

	raw := `{"_id": "mod-1", "courseRef": "course-1", "title": "Week 1",
		"lessonRefs": [{"_id": "les-1", "moduleRef": "mod-1", "title": "Intro", "content": "https://x.test"}]}`

	var m Module
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.ID != "mod-1" || m.LessonRefs[0].ID != "les-1" {
		t.Fatalf("module = %+v", m)
	}

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round map[string]any
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if round["_id"] != "mod-1" {
		t.Fatalf("marshaled id key = %v", round)
	}
}
