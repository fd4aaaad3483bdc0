// Package validator checks Skill frontmatter against the corpus conventions.
package validator

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/skillsref/internal/skill"
)

const (
	// MaxNameLength is the maximum allowed length for skill names.
	MaxNameLength = 64

	// MaxDescriptionLength is the maximum allowed description length in runes.
	MaxDescriptionLength = 1024
)

// nameRegex validates skill names: lowercase alphanumeric segments joined by
// single hyphens, no leading or trailing hyphen.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Option configures a Validator.
type Option func(*Validator)

// Validator validates Skill structs.
type Validator struct {
	requireLicense bool
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithRequiredLicense makes a missing license field a validation error.
// Public corpora generally want every skill to declare its license.
func WithRequiredLicense(required bool) Option {
	return func(v *Validator) {
		v.requireLicense = required
	}
}

// Validate checks a Skill's frontmatter fields.
// Returns a slice of validation errors, or nil if valid.
func (v *Validator) Validate(s *skill.Skill) []error {
	var errs []error

	errs = append(errs, v.validateName(s.Name)...)
	errs = append(errs, v.validateDescription(s.Description)...)
	errs = append(errs, v.validateMetadata(s.Metadata)...)

	if v.requireLicense && s.License == "" {
		errs = append(errs, &ValidationError{
			Field:   "license",
			Message: "license is required",
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateWithPath validates a Skill and additionally checks that the skill
// name matches the containing directory name. The path should point at the
// skill's SKILL.md file.
func (v *Validator) ValidateWithPath(s *skill.Skill, path string) []error {
	errs := v.Validate(s)

	if s.Name != "" {
		dir := filepath.Base(filepath.Dir(path))
		if dir != s.Name {
			errs = append(errs, &ValidationError{
				Field:   "name",
				Message: "skill name must match directory name",
				Value:   s.Name,
				Context: map[string]string{
					"directory": dir,
					"path":      path,
				},
			})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) validateName(name string) []error {
	var errs []error

	if name == "" {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: "name is required",
		})
		return errs
	}

	if len(name) > MaxNameLength {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: "name exceeds maximum length of 64 characters",
			Value:   name,
		})
	}

	if !nameRegex.MatchString(name) {
		msg := "name must be lowercase alphanumeric with single hyphens between segments"
		if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
			msg = "name cannot start or end with a hyphen"
		} else if strings.Contains(name, "--") {
			msg = "name cannot contain consecutive hyphens"
		} else if strings.ToLower(name) != name {
			msg = "name must be lowercase"
		}
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: msg,
			Value:   name,
		})
	}

	return errs
}

func (v *Validator) validateDescription(description string) []error {
	var errs []error

	if description == "" {
		errs = append(errs, &ValidationError{
			Field:   "description",
			Message: "description is required",
		})
		return errs
	}

	if strings.TrimSpace(description) == "" {
		errs = append(errs, &ValidationError{
			Field:   "description",
			Message: "description cannot be only whitespace",
			Value:   description,
		})
	}

	// Rune count: corpora are frequently non-ASCII.
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		errs = append(errs, &ValidationError{
			Field:   "description",
			Message: "description exceeds maximum length of 1024 characters",
		})
	}

	return errs
}

func (v *Validator) validateMetadata(metadata map[string]string) []error {
	var errs []error

	for key, value := range metadata {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, &ValidationError{
				Field:   "metadata",
				Message: "metadata keys cannot be empty",
			})
			continue
		}
		if strings.TrimSpace(value) == "" {
			errs = append(errs, &ValidationError{
				Field:   "metadata." + key,
				Message: "metadata values cannot be empty",
			})
		}
	}

	return errs
}
