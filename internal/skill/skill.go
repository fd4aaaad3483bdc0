// Package skill defines the skill data model: the YAML frontmatter record
// atop every SKILL.md plus the markdown instructions that follow it.
package skill

// Well-known metadata keys.
const (
	MetadataAuthor  = "author"
	MetadataVersion = "version"
)

// Skill represents one entry of a skill corpus: a directory holding a
// SKILL.md whose frontmatter carries the fields below.
type Skill struct {
	// Name is the skill's unique identifier (required).
	// Must be 1-64 chars, lowercase alphanumeric plus hyphens, no leading,
	// trailing, or consecutive hyphens, and must equal the directory name.
	Name string `yaml:"name" json:"name"`

	// Description explains what the skill teaches the agent (required).
	// Must be 1-1024 characters.
	Description string `yaml:"description" json:"description"`

	// License is the SPDX license identifier (optional).
	License string `yaml:"license,omitempty" json:"license,omitempty"`

	// Metadata contains optional key-value pairs such as author and version.
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`

	// Instructions contains the skill's markdown body content.
	// This field is not part of the YAML frontmatter.
	Instructions string `yaml:"-" json:"-"`
}

// Author returns metadata.author, or an empty string when unset.
func (s *Skill) Author() string {
	return s.Metadata[MetadataAuthor]
}

// Version returns metadata.version, or an empty string when unset.
func (s *Skill) Version() string {
	return s.Metadata[MetadataVersion]
}
