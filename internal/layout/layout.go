// Package layout checks a skill directory against the corpus file-layout
// convention:
//
//	skill-name/
//	├── SKILL.md          (required)
//	├── scripts/          (optional)
//	├── references/       (optional)
//	└── assets/           (optional)
package layout

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/internal/validator"
)

// Check inspects the skill directory structure and reports issues.
// Structural violations (missing SKILL.md, a file where a directory is
// expected) are errors; cosmetic deviations (stray files, empty optional
// directories) are warnings.
func Check(skillDir string) *validator.Result {
	result := &validator.Result{}

	info, err := os.Stat(skillDir)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddError("", "skill directory does not exist", skillDir)
		} else {
			result.AddError("", "cannot access skill directory: "+err.Error(), skillDir)
		}
		return result
	}
	if !info.IsDir() {
		result.AddError("", "skill path is not a directory", skillDir)
		return result
	}

	checkSkillFile(skillDir, result)
	checkEntries(skillDir, result)

	return result
}

func checkSkillFile(skillDir string, result *validator.Result) {
	skillFile := paths.SkillFile(skillDir)

	info, err := os.Lstat(skillFile)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddError(paths.SkillFileName, "required file is missing", nil)
		} else {
			result.AddError(paths.SkillFileName, "cannot access file: "+err.Error(), nil)
		}
		return
	}

	// Symlinked SKILL.md can point outside the corpus; loaders copy skill
	// directories verbatim, so the link target would not travel with them.
	if info.Mode()&os.ModeSymlink != 0 {
		result.AddError(paths.SkillFileName, "must be a regular file, not a symlink", nil)
		return
	}
	if info.IsDir() {
		result.AddError(paths.SkillFileName, "expected a file, found a directory", nil)
		return
	}
	if info.Size() == 0 {
		result.AddError(paths.SkillFileName, "file is empty", nil)
	}
}

func checkEntries(skillDir string, result *validator.Result) {
	entries, err := os.ReadDir(skillDir)
	if err != nil {
		result.AddError("", "reading skill directory: "+err.Error(), skillDir)
		return
	}

	known := paths.OptionalSkillDirs()

	for _, entry := range entries {
		name := entry.Name()

		if name == paths.SkillFileName {
			continue
		}
		// Dotfiles (e.g. .gitkeep, .DS_Store) are tolerated silently.
		if name[0] == '.' {
			continue
		}

		if slices.Contains(known, name) {
			if !entry.IsDir() {
				result.AddError(name, "expected a directory, found a file", nil)
				continue
			}
			checkOptionalDir(filepath.Join(skillDir, name), name, result)
			continue
		}

		if entry.IsDir() {
			result.AddWarning(name, "unexpected directory; loaders only consume scripts/, references/, and assets/", nil)
		} else {
			result.AddWarning(name, "unexpected file alongside SKILL.md", nil)
		}
	}
}

func checkOptionalDir(dir, name string, result *validator.Result) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		result.AddError(name, "reading directory: "+err.Error(), nil)
		return
	}

	for _, entry := range entries {
		if entry.Name()[0] != '.' {
			return
		}
	}
	result.AddWarning(name, "optional directory is empty", nil)
}
