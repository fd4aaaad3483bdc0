package parser

import "fmt"

// ParseError ties a parse failure to the SKILL.md file it came from.
// The cause stays reachable through Unwrap, so callers can probe for
// frontmatter sentinels or os.ErrNotExist with errors.Is.
type ParseError struct {
	Path string
	Err  error
}

func parseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse SKILL.md: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
