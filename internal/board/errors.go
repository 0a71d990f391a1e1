package board

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for stable mapping between the engine and the
// transport layer. ErrNotFound and ErrBadToken surface to the user as one
// message but stay distinguishable for diagnostics.
var (
	ErrNotFound       = errors.New("post not found")
	ErrBadToken       = errors.New("invalid token")
	ErrEditExpired    = errors.New("edit window expired")
	ErrDeleteExpired  = errors.New("delete window expired")
	ErrStorage        = errors.New("storage failure")
	ErrDuplicateToken = errors.New("duplicate token")
)

// FieldErrors accumulates validation failures keyed by form field.
// Validation never short-circuits, so one submission can carry several
// messages per field.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// First returns the first message recorded for the field, or "".
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Error implements error so a FieldErrors value can be logged as one line.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msgs := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return strings.Join(parts, ", ")
}
