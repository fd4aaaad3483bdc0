package validator

import (
	"fmt"
	"strings"
)

// ValidationError reports one frontmatter field that violates the schema.
// Value carries the offending input when quoting it helps the user, and
// Context adds extra detail such as the directory a name was checked against.
type ValidationError struct {
	Field   string
	Message string
	Value   string
	Context map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Field)
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
