package content

import "campus-cli/internal/model"

// Role gating for mutation affordances. These are presentation gates only:
// the server independently rejects unauthorized mutations, so a wrong answer
// here can at worst show a button that fails.

func CanCreateModule(r model.Role) bool { return r == model.RoleTeacher }

func CanCreateLesson(r model.Role) bool { return r == model.RoleTeacher }

func CanEditModule(r model.Role) bool { return r == model.RoleTeacher }

func CanDeleteModule(r model.Role) bool { return r == model.RoleTeacher }

// FetchGuard orders in-flight fetches for one slot of server state. There is
// no cancellation of in-flight requests; instead each issued fetch takes the
// next sequence number and only the response carrying the latest number may
// be applied. Everything older (or anything arriving after Invalidate) is
// dropped, so a torn-down or superseded view never has a stale response
// applied to it. Within the guard, last-write-wins.
type FetchGuard struct {
	seq int
}

// Next registers a new fetch and returns its sequence number.
func (g *FetchGuard) Next() int {
	g.seq++
	return g.seq
}

// Current reports whether seq belongs to the most recently issued fetch.
func (g *FetchGuard) Current(seq int) bool { return seq == g.seq }

// Invalidate drops every outstanding fetch, e.g. on navigation away.
func (g *FetchGuard) Invalidate() { g.seq++ }
