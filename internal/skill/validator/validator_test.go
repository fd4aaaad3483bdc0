package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/thoreinstein/skillsref/internal/skill"
)

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name      string
		skill     *skill.Skill
		opts      []Option
		wantErrs  int
		wantField string
		wantMsg   string
	}{
		{
			name: "valid skill with all fields",
			skill: &skill.Skill{
				Name:        "react-hook-form-arrays",
				Description: "Working with field arrays",
				License:     "MIT",
				Metadata: map[string]string{
					"author":  "Docs Team",
					"version": "1.0.0",
				},
			},
			wantErrs: 0,
		},
		{
			name: "valid minimal skill",
			skill: &skill.Skill{
				Name:        "test",
				Description: "A test skill",
			},
			wantErrs: 0,
		},
		{
			name: "valid single char name",
			skill: &skill.Skill{
				Name:        "a",
				Description: "Single character name",
			},
			wantErrs: 0,
		},
		{
			name: "valid max length name",
			skill: &skill.Skill{
				Name:        strings.Repeat("a", MaxNameLength),
				Description: "Max length name",
			},
			wantErrs: 0,
		},
		{
			name: "missing name",
			skill: &skill.Skill{
				Description: "A test skill",
			},
			wantErrs:  1,
			wantField: "name",
			wantMsg:   "required",
		},
		{
			name: "name too long",
			skill: &skill.Skill{
				Name:        strings.Repeat("a", MaxNameLength+1),
				Description: "A test skill",
			},
			wantErrs:  1,
			wantField: "name",
			wantMsg:   "exceeds maximum length",
		},
		{
			name: "name with uppercase",
			skill: &skill.Skill{
				Name:        "MySkill",
				Description: "A test skill",
			},
			wantErrs:  1,
			wantField: "name",
			wantMsg:   "lowercase",
		},
		{
			name: "name starts with hyphen",
			skill: &skill.Skill{
				Name:        "-skill",
				Description: "A test skill",
			},
			wantErrs:  1,
			wantField: "name",
			wantMsg:   "cannot start or end with a hyphen",
		},
		{
			name: "name ends with hyphen",
			skill: &skill.Skill{
				Name:        "skill-",
				Description: "A test skill",
			},
			wantErrs:  1,
			wantField: "name",
			wantMsg:   "cannot start or end with a hyphen",
		},
		{
			name: "name with consecutive hyphens",
			skill: &skill.Skill{
				Name:        "my--skill",
				Description: "A test skill",
			},
			wantErrs:  1,
			wantField: "name",
			wantMsg:   "consecutive hyphens",
		},
		{
			name: "name with invalid characters",
			skill: &skill.Skill{
				Name:        "my_skill",
				Description: "A test skill",
			},
			wantErrs:  1,
			wantField: "name",
			wantMsg:   "lowercase alphanumeric",
		},
		{
			name: "missing description",
			skill: &skill.Skill{
				Name: "my-skill",
			},
			wantErrs:  1,
			wantField: "description",
			wantMsg:   "required",
		},
		{
			name: "whitespace only description",
			skill: &skill.Skill{
				Name:        "my-skill",
				Description: "   \t  ",
			},
			wantErrs:  1,
			wantField: "description",
			wantMsg:   "whitespace",
		},
		{
			name: "description too long",
			skill: &skill.Skill{
				Name:        "my-skill",
				Description: strings.Repeat("x", MaxDescriptionLength+1),
			},
			wantErrs:  1,
			wantField: "description",
			wantMsg:   "exceeds maximum length",
		},
		{
			name: "multibyte description at limit",
			skill: &skill.Skill{
				Name:        "my-skill",
				Description: strings.Repeat("ä", MaxDescriptionLength),
			},
			wantErrs: 0,
		},
		{
			name: "missing license with required license option",
			skill: &skill.Skill{
				Name:        "my-skill",
				Description: "A test skill",
			},
			opts:      []Option{WithRequiredLicense(true)},
			wantErrs:  1,
			wantField: "license",
			wantMsg:   "required",
		},
		{
			name: "empty metadata value",
			skill: &skill.Skill{
				Name:        "my-skill",
				Description: "A test skill",
				Metadata:    map[string]string{"author": ""},
			},
			wantErrs:  1,
			wantField: "metadata.author",
			wantMsg:   "cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.opts...)
			errs := v.Validate(tt.skill)

			if len(errs) != tt.wantErrs {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), tt.wantErrs, errs)
			}
			if tt.wantErrs == 0 {
				return
			}

			var valErr *ValidationError
			if !errors.As(errs[0], &valErr) {
				t.Fatalf("error type = %T, want *ValidationError", errs[0])
			}
			if valErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", valErr.Field, tt.wantField)
			}
			if !strings.Contains(valErr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want substring %q", valErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "name must be lowercase", Value: "PDF"}
	if got := err.Error(); got != `name "PDF": name must be lowercase` {
		t.Errorf("Error() = %q", got)
	}

	err = &ValidationError{Field: "description", Message: "description is required"}
	if got := err.Error(); got != "description: description is required" {
		t.Errorf("Error() without value = %q", got)
	}
}

func TestValidator_ValidateWithPath(t *testing.T) {
	v := New()

	s := &skill.Skill{
		Name:        "zod-schemas",
		Description: "Schema declaration guidance",
	}

	if errs := v.ValidateWithPath(s, "/corpus/zod-schemas/SKILL.md"); errs != nil {
		t.Errorf("matching directory should pass, got %v", errs)
	}

	errs := v.ValidateWithPath(s, "/corpus/other-dir/SKILL.md")
	if len(errs) != 1 {
		t.Fatalf("mismatched directory should fail, got %v", errs)
	}

	var valErr *ValidationError
	if !errors.As(errs[0], &valErr) {
		t.Fatal("expected *ValidationError")
	}
	if valErr.Context["directory"] != "other-dir" {
		t.Errorf("Context[directory] = %q, want %q", valErr.Context["directory"], "other-dir")
	}
}

func TestValidator_ValidateWithPath_SkipsDirCheckWhenNameMissing(t *testing.T) {
	v := New()

	s := &skill.Skill{Description: "No name at all"}
	errs := v.ValidateWithPath(s, "/corpus/anything/SKILL.md")

	// Only the missing-name error; no misleading directory mismatch on top.
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}
