package repo

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/pkg/frontmatter"
)

// ValidationWarning represents a non-fatal issue found during repository
// validation. Warnings are informational and never block operations.
type ValidationWarning struct {
	// Path is the relative path within the repository where the issue was found.
	Path string

	// Message describes the validation issue.
	Message string
}

// ValidateContent checks a repository clone for structural issues: a missing
// skills/ directory and skill entries whose SKILL.md cannot be parsed.
// All issues are reported as warnings so a partially broken corpus can still
// be browsed.
func ValidateContent(repoPath string) []ValidationWarning {
	var warnings []ValidationWarning

	skillsDir := filepath.Join(repoPath, "skills")
	info, err := os.Stat(skillsDir)
	if os.IsNotExist(err) {
		warnings = append(warnings, ValidationWarning{
			Path:    "skills",
			Message: "directory not found",
		})
		return warnings
	}
	if err != nil {
		warnings = append(warnings, ValidationWarning{
			Path:    "skills",
			Message: "cannot access directory: " + err.Error(),
		})
		return warnings
	}
	if !info.IsDir() {
		warnings = append(warnings, ValidationWarning{
			Path:    "skills",
			Message: "expected directory, found file",
		})
		return warnings
	}

	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		warnings = append(warnings, ValidationWarning{
			Path:    "skills",
			Message: "reading directory: " + err.Error(),
		})
		return warnings
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rel := filepath.Join("skills", entry.Name())

		skillFile := filepath.Join(skillsDir, entry.Name(), paths.SkillFileName)
		f, err := os.Open(skillFile)
		if err != nil {
			if os.IsNotExist(err) {
				warnings = append(warnings, ValidationWarning{
					Path:    rel,
					Message: "missing SKILL.md",
				})
			} else {
				warnings = append(warnings, ValidationWarning{
					Path:    rel,
					Message: "cannot open SKILL.md: " + err.Error(),
				})
			}
			continue
		}

		var meta struct {
			Name string `yaml:"name"`
		}
		err = frontmatter.ParseHeader(f, &meta)
		f.Close()
		if err != nil {
			warnings = append(warnings, ValidationWarning{
				Path:    rel,
				Message: "unparseable frontmatter: " + err.Error(),
			})
			continue
		}
		if meta.Name == "" {
			warnings = append(warnings, ValidationWarning{
				Path:    rel,
				Message: "frontmatter missing name field",
			})
		}
	}

	return warnings
}
