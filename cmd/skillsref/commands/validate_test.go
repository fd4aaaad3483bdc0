package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/skillsref/internal/errors"
)

// setupValidSkill creates a temp directory with a valid SKILL.md file.
func setupValidSkill(t *testing.T, name string) string {
	t.Helper()
	return setupSkillWithContent(t, name, `---
name: `+name+`
description: A test skill
---
# Test

Test instructions.
`)
}

// setupSkillWithContent creates a temp directory with the given SKILL.md content.
func setupSkillWithContent(t *testing.T, dirName, content string) string {
	t.Helper()

	skillDir := filepath.Join(t.TempDir(), dirName)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatalf("failed to create skill dir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write SKILL.md: %v", err)
	}

	return skillDir
}

func TestValidateCommand_ValidSkill(t *testing.T) {
	skillDir := setupValidSkill(t, "test-skill")
	validateStrict = false
	validateJSON = false

	var buf bytes.Buffer
	if err := runValidateWithWriter(&buf, []string{skillDir}); err != nil {
		t.Fatalf("expected no error for valid skill, got: %v", err)
	}

	if !strings.Contains(buf.String(), "Validation passed") {
		t.Errorf("expected success message in output, got:\n%s", buf.String())
	}
}

func TestValidateCommand_MissingName(t *testing.T) {
	skillDir := setupSkillWithContent(t, "invalid-skill", `---
description: Missing name field
---
Instructions here.
`)
	validateStrict = false
	validateJSON = false

	var buf bytes.Buffer
	err := runValidateWithWriter(&buf, []string{skillDir})
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}

	if !strings.Contains(buf.String(), "name") {
		t.Errorf("expected name error in output, got:\n%s", buf.String())
	}
}

func TestValidateCommand_NameDirectoryMismatch(t *testing.T) {
	skillDir := setupSkillWithContent(t, "actual-dir", `---
name: other-name
description: Name does not match directory
---
Instructions here.
`)
	validateStrict = false
	validateJSON = false

	var buf bytes.Buffer
	err := runValidateWithWriter(&buf, []string{skillDir})
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestValidateCommand_MissingSkillFile(t *testing.T) {
	dir := t.TempDir()
	validateStrict = false
	validateJSON = false

	var buf bytes.Buffer
	err := runValidateWithWriter(&buf, []string{dir})
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
	if !strings.Contains(buf.String(), "SKILL.md") {
		t.Errorf("expected SKILL.md mention in output, got:\n%s", buf.String())
	}
}

func TestValidateCommand_StrictTreatsWarningsAsErrors(t *testing.T) {
	skillDir := setupValidSkill(t, "strict-skill")
	// An empty optional directory produces a warning.
	if err := os.MkdirAll(filepath.Join(skillDir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}

	validateJSON = false

	validateStrict = false
	var buf bytes.Buffer
	if err := runValidateWithWriter(&buf, []string{skillDir}); err != nil {
		t.Fatalf("without --strict warnings should pass, got: %v", err)
	}

	validateStrict = true
	defer func() { validateStrict = false }()
	buf.Reset()
	err := runValidateWithWriter(&buf, []string{skillDir})
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed under --strict", err)
	}
}

func TestValidateCommand_JSONOutput(t *testing.T) {
	skillDir := setupValidSkill(t, "json-skill")
	validateStrict = false
	validateJSON = true
	defer func() { validateJSON = false }()

	var buf bytes.Buffer
	if err := runValidateWithWriter(&buf, []string{skillDir}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
}

func TestValidateCommand_MultiplePaths(t *testing.T) {
	good := setupValidSkill(t, "good-one")
	bad := setupSkillWithContent(t, "bad-one", `---
description: no name
---
body
`)
	validateStrict = false
	validateJSON = false

	var buf bytes.Buffer
	err := runValidateWithWriter(&buf, []string{good, bad})
	if !errors.Is(err, errors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
	// Both paths are labeled when more than one is given.
	if !strings.Contains(buf.String(), "good-one") || !strings.Contains(buf.String(), "bad-one") {
		t.Errorf("expected both paths in output, got:\n%s", buf.String())
	}
}
