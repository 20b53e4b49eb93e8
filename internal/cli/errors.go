package cli

import (
	"errors"
	"fmt"
	"strings"

	"campus-cli/internal/gateway"
	"campus-cli/internal/model"
)

var (
	errNoServer     = errors.New("no server configured; pass --server or run `campus login --server <url>`")
	errNotSignedIn  = errors.New("not signed in; run `campus login`")
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type permissionError struct {
	op   string
	role model.Role
}

func (e permissionError) Error() string {
	return fmt.Sprintf("permission denied: role %s cannot %s", e.role, e.op)
}

func errPermission(op string, role model.Role) error {
	return permissionError{op: op, role: role}
}

// mutationError flattens a failed gateway Result into a CLI error so scripts
// get a non-zero exit with the server (or validation) message.
type mutationError struct {
	res gateway.Result
}

func (e mutationError) Error() string {
	parts := []string{}
	if e.res.ErrorMessage != "" {
		parts = append(parts, e.res.ErrorMessage)
	}
	for f, msg := range e.res.FieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
	}
	if len(parts) == 0 {
		parts = append(parts, "mutation failed")
	}
	return strings.Join(parts, "; ")
}

func errMutation(res gateway.Result) error {
	return mutationError{res: res}
}
