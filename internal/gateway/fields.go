package gateway

import (
	"net/url"
	"strings"
	"time"
)

// FieldKind selects the validator applied on top of the generic
// required/max-length checks.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldURI
	FieldTimestamp
)

// FieldSpec declares one recognized form field for an entity kind. The specs
// are the single source for both validation and field rendering; nothing else
// in the client hardcodes per-entity field knowledge.
type FieldSpec struct {
	Name      string
	Label     string
	Required  bool
	MaxLength int
	Kind      FieldKind
}

const titleMaxLength = 200

// Validation messages shown inline on the field.
const (
	msgRequired = "Required"
	msgTooLong  = "Character limit exceeded"
	msgBadURL   = "Invalid URL"
	msgBadDate  = "Invalid date"
)

func ModuleFields() []FieldSpec {
	return []FieldSpec{
		{Name: "title", Label: "Module Name", Required: true, MaxLength: titleMaxLength},
		{Name: "lockUntil", Label: "Lock Until", Kind: FieldTimestamp},
	}
}

func LessonFields() []FieldSpec {
	return []FieldSpec{
		{Name: "title", Label: "Lesson Name", Required: true, MaxLength: titleMaxLength},
		{Name: "content", Label: "Content URL", Required: true, Kind: FieldURI},
	}
}

// Validate runs every spec against the given values and returns the field
// errors, keyed by field name. An empty map means the values are submittable.
// Timestamps are RFC 3339.
func Validate(specs []FieldSpec, values map[string]string) map[string]string {
	errs := map[string]string{}
	for _, sp := range specs {
		v := strings.TrimSpace(values[sp.Name])
		if v == "" {
			if sp.Required {
				errs[sp.Name] = msgRequired
			}
			continue
		}
		if sp.MaxLength > 0 && len([]rune(v)) > sp.MaxLength {
			errs[sp.Name] = msgTooLong
			continue
		}
		switch sp.Kind {
		case FieldURI:
			u, err := url.Parse(v)
			if err != nil || u.Scheme == "" || u.Host == "" {
				errs[sp.Name] = msgBadURL
			}
		case FieldTimestamp:
			if _, err := time.Parse(time.RFC3339, v); err != nil {
				errs[sp.Name] = msgBadDate
			}
		}
	}
	return errs
}
