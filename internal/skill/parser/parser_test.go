package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/skillsref/internal/skill"
	"github.com/thoreinstein/skillsref/pkg/frontmatter"
)

const validSkillFull = `---
name: zod-schemas
description: How to declare and refine validation schemas
license: MIT
metadata:
  author: Docs Team
  version: "2.1.0"
---
# Declaring Schemas

Start from the object builder.

## Refinements

Chain refinements after the base schema.
`

const validSkillMinimal = `---
name: minimal-skill
description: A minimal skill
---
`

const bodyOnly = `# Just Instructions

No frontmatter here at all.
`

const malformedYAML = `---
name: bad-yaml
description: [unclosed bracket
---
Body content.
`

func TestParser_ParseBytes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		checkSkill func(t *testing.T, s *skill.Skill)
	}{
		{
			name:  "full skill",
			input: validSkillFull,
			checkSkill: func(t *testing.T, s *skill.Skill) {
				if s.Name != "zod-schemas" {
					t.Errorf("Name = %q", s.Name)
				}
				if s.License != "MIT" {
					t.Errorf("License = %q", s.License)
				}
				if s.Author() != "Docs Team" {
					t.Errorf("Author() = %q", s.Author())
				}
				if s.Version() != "2.1.0" {
					t.Errorf("Version() = %q", s.Version())
				}
				if !strings.HasPrefix(s.Instructions, "# Declaring Schemas") {
					t.Errorf("Instructions = %q", s.Instructions)
				}
				if strings.HasSuffix(s.Instructions, "\n") {
					t.Error("Instructions should be trimmed")
				}
			},
		},
		{
			name:  "minimal skill with empty body",
			input: validSkillMinimal,
			checkSkill: func(t *testing.T, s *skill.Skill) {
				if s.Name != "minimal-skill" {
					t.Errorf("Name = %q", s.Name)
				}
				if s.Instructions != "" {
					t.Errorf("Instructions = %q, want empty", s.Instructions)
				}
			},
		},
		{
			name:    "body without frontmatter",
			input:   bodyOnly,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			input:   malformedYAML,
			wantErr: true,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: true,
		},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := p.ParseBytes([]byte(tt.input), "SKILL.md")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Errorf("error type = %T, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.checkSkill(t, s)
		})
	}
}

func TestParser_ParseBytes_MissingFrontmatterSentinel(t *testing.T) {
	_, err := New().ParseBytes([]byte(bodyOnly), "SKILL.md")
	if !errors.Is(err, frontmatter.ErrMissingFrontmatter) {
		t.Errorf("error = %v, want ErrMissingFrontmatter in chain", err)
	}
}

func TestParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SKILL.md")
	if err := os.WriteFile(path, []byte(validSkillFull), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := New().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if s.Name != "zod-schemas" {
		t.Errorf("Name = %q", s.Name)
	}
}

func TestParser_ParseFile_Missing(t *testing.T) {
	_, err := New().ParseFile(filepath.Join(t.TempDir(), "SKILL.md"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if !strings.Contains(parseErr.Error(), "SKILL.md") {
		t.Errorf("error should carry path context: %v", parseErr)
	}
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Path: "skills/pdf/SKILL.md", Err: errors.New("boom")}
	if got := err.Error(); got != `parse skills/pdf/SKILL.md: boom` {
		t.Errorf("Error() = %q", got)
	}

	err = &ParseError{Err: errors.New("boom")}
	if got := err.Error(); got != "parse SKILL.md: boom" {
		t.Errorf("Error() without path = %q", got)
	}
}

func TestParser_ParseHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SKILL.md")
	if err := os.WriteFile(path, []byte(validSkillFull), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := New().ParseHeader(path)
	if err != nil {
		t.Fatalf("ParseHeader() error: %v", err)
	}
	if s.Name != "zod-schemas" || s.Description == "" {
		t.Errorf("header parse incomplete: %+v", s)
	}
	if s.Instructions != "" {
		t.Errorf("ParseHeader should not read the body, got %q", s.Instructions)
	}
}
