package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillsref/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidExclude indicates an exclude pattern does not compile.
	ErrInvalidExclude = errors.New("invalid exclude pattern")

	// ErrInvalidRepo indicates a repository entry is incomplete or malformed.
	ErrInvalidRepo = errors.New("invalid repository entry")

	// ErrDuplicateRepo indicates two repository entries share a name.
	ErrDuplicateRepo = errors.New("duplicate repository name")
)

// repoNamePattern validates repository names: lowercase alphanumeric with
// hyphens, starting with a letter.
var repoNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if strings.ContainsRune(cfg.SkillsDir, '\x00') {
		errs = append(errs, errors.Newf("skills_dir contains a null byte"))
	}

	for _, pattern := range cfg.Excludes {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %v", ErrInvalidExclude, pattern, err))
		}
	}

	seen := make(map[string]bool, len(cfg.Repos))
	for _, repo := range cfg.Repos {
		if repo.Name == "" || repo.URL == "" || repo.Path == "" {
			errs = append(errs, fmt.Errorf("%w: name, url, and path are all required (name=%q)", ErrInvalidRepo, repo.Name))
			continue
		}
		if !repoNamePattern.MatchString(repo.Name) {
			errs = append(errs, fmt.Errorf("%w: name %q must be lowercase alphanumeric with hyphens", ErrInvalidRepo, repo.Name))
		}
		if seen[repo.Name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateRepo, repo.Name))
		}
		seen[repo.Name] = true
	}

	return errs
}

// CompileExcludes compiles the exclude patterns for use during scanning.
// Invalid patterns are reported by Validate; this helper skips them.
func (c *Config) CompileExcludes() []glob.Glob {
	globs := make([]glob.Glob, 0, len(c.Excludes))
	for _, pattern := range c.Excludes {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

func parseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	return &cfg, nil
}
