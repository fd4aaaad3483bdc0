package repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSkill(t *testing.T, dir, name, content string) {
	t.Helper()
	skillDir := filepath.Join(dir, "skills", name)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestValidateContent(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, dir, "good-skill", "---\nname: good-skill\ndescription: A fine skill.\n---\n\n# Good\n")

	warnings := ValidateContent(dir)
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestValidateContent_MissingSkillsDir(t *testing.T) {
	warnings := ValidateContent(t.TempDir())
	if len(warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0].Message, "skills") {
		t.Errorf("message = %q, want mention of skills directory", warnings[0].Message)
	}
}

func TestValidateContent_MissingSkillFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skills", "empty-one"), 0o755); err != nil {
		t.Fatal(err)
	}

	warnings := ValidateContent(dir)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0].Path, "empty-one") {
		t.Errorf("path = %q, want it to name the skill directory", warnings[0].Path)
	}
}

func TestValidateContent_BadFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, dir, "broken", "no frontmatter here\n")

	warnings := ValidateContent(dir)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warnings))
	}
}
