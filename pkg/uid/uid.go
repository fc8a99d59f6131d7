// Package uid provides canonical identifiers for stored documents.
//
// Every identifier in the system is a UUID rendered in one canonical
// uppercase textual form. The canonical form is the only key ever used
// for store lookups, equality checks, and ownership comparisons, which
// removes the class of lookup failures caused by comparing
// differently-cased renderings of the same id.
package uid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New returns a freshly generated canonical identifier.
func New() string {
	return strings.ToUpper(uuid.NewString())
}

// Canon normalizes an identifier to its canonical uppercase form.
// An empty input yields an empty output; Canon never fabricates an
// identifier. It is idempotent and case-insensitive:
// Canon(Canon(s)) == Canon(s) and Canon(lower(s)) == Canon(upper(s)).
func Canon(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s)
}

// Parse validates s as a UUID and returns its canonical form. Use it at
// the request boundary; inside the core, identifiers are already
// canonical and Canon suffices.
func Parse(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse id %q: %w", s, err)
	}
	return strings.ToUpper(id.String()), nil
}
