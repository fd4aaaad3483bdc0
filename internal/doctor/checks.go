package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/git"
	"github.com/thoreinstein/skillsref/internal/paths"
)

// GitCheck verifies the git binary is on PATH. Repository operations
// shell out to it.
type GitCheck struct{}

var _ Check = (*GitCheck)(nil)

func (c *GitCheck) Name() string     { return "git-available" }
func (c *GitCheck) Category() string { return "environment" }

func (c *GitCheck) Run() *CheckResult {
	if !git.Available() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "git not found on PATH",
			FixHint:  "install git to manage skill repositories",
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "git is available",
	}
}

// ConfigCheck loads the configuration file and validates its contents.
type ConfigCheck struct {
	// Path overrides the default config location, for tests.
	Path string
}

var _ Check = (*ConfigCheck)(nil)

func (c *ConfigCheck) Name() string     { return "config-valid" }
func (c *ConfigCheck) Category() string { return "config" }

func (c *ConfigCheck) Run() *CheckResult {
	path := c.Path
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no config file, defaults in effect",
			Details:  map[string]any{"path": path},
		}
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("config unreadable: %v", err),
			Details:  map[string]any{"path": path},
			FixHint:  "fix or remove " + path,
		}
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		details := map[string]any{"path": path}
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		details["problems"] = msgs
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("config has %d problem(s)", len(errs)),
			Details:  details,
			FixHint:  "edit " + path,
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "config is valid",
		Details:  map[string]any{"path": path},
	}
}

// CacheCheck verifies the repository cache directory is writable.
type CacheCheck struct {
	// Dir overrides the default cache location, for tests.
	Dir string
}

var _ Check = (*CacheCheck)(nil)

func (c *CacheCheck) Name() string     { return "cache-writable" }
func (c *CacheCheck) Category() string { return "filesystem" }

func (c *CacheCheck) Run() *CheckResult {
	dir := c.Dir
	if dir == "" {
		dir = paths.ReposCacheDir()
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot create cache directory: %v", err),
			Details:  map[string]any{"path": dir},
		}
	}

	probe, err := os.CreateTemp(dir, ".doctor-probe-*")
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cache directory not writable: %v", err),
			Details:  map[string]any{"path": dir},
			FixHint:  "check permissions on " + dir,
		}
	}
	probe.Close()
	os.Remove(probe.Name())

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "cache directory is writable",
		Details:  map[string]any{"path": dir},
	}
}

// ReposCheck verifies each configured repository still has its clone on disk.
type ReposCheck struct {
	Repos []config.RepoConfig
}

var _ Check = (*ReposCheck)(nil)

func (c *ReposCheck) Name() string     { return "repos-present" }
func (c *ReposCheck) Category() string { return "repos" }

func (c *ReposCheck) Run() *CheckResult {
	if len(c.Repos) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no repositories configured",
		}
	}

	var missing []string
	for _, r := range c.Repos {
		info, err := os.Stat(r.Path)
		if err != nil || !info.IsDir() {
			missing = append(missing, r.Name)
		}
	}

	if len(missing) > 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%d of %d repository clones missing", len(missing), len(c.Repos)),
			Details:  map[string]any{"missing": missing},
			FixHint:  "run: skillsref repo update",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("all %d repository clones present", len(c.Repos)),
	}
}

// SkillsDirCheck verifies the configured local skills directory, when set,
// exists and is a directory.
type SkillsDirCheck struct {
	Dir string
}

var _ Check = (*SkillsDirCheck)(nil)

func (c *SkillsDirCheck) Name() string     { return "skills-dir" }
func (c *SkillsDirCheck) Category() string { return "config" }

func (c *SkillsDirCheck) Run() *CheckResult {
	if c.Dir == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no local skills directory configured",
		}
	}

	dir := filepath.Clean(c.Dir)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "skills directory does not exist",
			Details:  map[string]any{"path": dir},
			FixHint:  "mkdir -p " + dir,
		}
	}
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot access skills directory: %v", err),
			Details:  map[string]any{"path": dir},
		}
	}
	if !info.IsDir() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "skills directory path is a file",
			Details:  map[string]any{"path": dir},
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "skills directory exists",
		Details:  map[string]any{"path": dir},
	}
}
