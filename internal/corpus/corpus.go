// Package corpus discovers skills across configured repositories and local
// directories. A corpus entry carries just enough metadata to list, search,
// and locate a skill; the full skill file is only parsed on demand.
package corpus

import (
	"path/filepath"
)

// Entry describes a discovered skill.
type Entry struct {
	// Name is the skill identifier from frontmatter, falling back to the
	// directory name when absent.
	Name string `json:"name"`

	// Description is the frontmatter description, possibly empty for
	// malformed skills.
	Description string `json:"description,omitempty"`

	// RepoName is the short name of the repository the skill came from.
	// Empty for skills discovered in a local directory.
	RepoName string `json:"repo_name,omitempty"`

	// RepoURL is the repository's remote URL, when known.
	RepoURL string `json:"repo_url,omitempty"`

	// Dir is the absolute path to the skill directory.
	Dir string `json:"dir"`

	// Path is the entry's path relative to its source root, for display.
	Path string `json:"path"`
}

// SkillFile returns the absolute path to the entry's SKILL.md.
func (e *Entry) SkillFile() string {
	return filepath.Join(e.Dir, "SKILL.md")
}

// Source names where the entry came from, for display. Local entries
// report "local".
func (e *Entry) Source() string {
	if e.RepoName == "" {
		return "local"
	}
	return e.RepoName
}
