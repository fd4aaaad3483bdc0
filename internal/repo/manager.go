// Package repo manages registered skill repositories: git clones in the
// cache directory plus their entries in the config file.
package repo

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/git"
	"github.com/thoreinstein/skillsref/internal/paths"
)

// Sentinel errors for repository operations.
var (
	ErrNotFound      = errors.New("repository not found")
	ErrInvalidURL    = errors.New("invalid git URL")
	ErrNameCollision = errors.New("repository with this name already exists")
	ErrInvalidName   = errors.New("invalid repository name")
)

// namePattern validates repository names.
// Names must be lowercase alphanumeric with hyphens, starting with a letter.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// cloneDepth keeps clones shallow; corpora are consumed at HEAD.
const cloneDepth = 1

// Option configures Add behavior.
type Option func(*addOptions)

type addOptions struct {
	name string
}

// WithName overrides the repository name derived from the URL.
func WithName(name string) Option {
	return func(o *addOptions) {
		o.name = name
	}
}

// Manager manages skill repositories.
type Manager struct {
	configPath string
	cacheDir   string
}

// NewManager creates a repository manager persisting to configPath and
// cloning under paths.ReposCacheDir.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		cacheDir:   paths.ReposCacheDir(),
	}
}

// NewManagerWithCache creates a manager with an explicit cache directory.
// Tests use this to avoid touching the user's cache.
func NewManagerWithCache(configPath, cacheDir string) *Manager {
	return &Manager{configPath: configPath, cacheDir: cacheDir}
}

// Add clones a repository and registers it in the config.
// Returns the created RepoConfig or an error.
func (m *Manager) Add(url string, opts ...Option) (*config.RepoConfig, error) {
	if !git.IsURL(url) {
		return nil, errors.Wrapf(ErrInvalidURL, "%q", url)
	}

	var options addOptions
	for _, opt := range opts {
		opt(&options)
	}

	name := options.name
	if name == "" {
		name = git.RepoNameFromURL(url)
	}
	if !namePattern.MatchString(name) {
		return nil, errors.Wrapf(ErrInvalidName, "%q", name)
	}

	cfg, err := config.LoadFile(m.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Repo(name) != nil {
		return nil, errors.Wrapf(ErrNameCollision, "%q", name)
	}

	dest := filepath.Join(m.cacheDir, name)
	if err := paths.EnsureDir(m.cacheDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}
	if err := git.Clone(url, dest, cloneDepth); err != nil {
		// Leave no partial clone behind.
		os.RemoveAll(dest)
		return nil, err
	}

	repoCfg := config.RepoConfig{Name: name, URL: url, Path: dest}
	cfg.Repos = append(cfg.Repos, repoCfg)
	if err := config.Save(cfg, m.configPath); err != nil {
		os.RemoveAll(dest)
		return nil, errors.Wrap(err, "persisting repository registration")
	}

	return &repoCfg, nil
}

// List returns all registered repositories.
func (m *Manager) List() ([]config.RepoConfig, error) {
	cfg, err := config.LoadFile(m.configPath)
	if err != nil {
		return nil, err
	}
	return cfg.Repos, nil
}

// Remove deletes a repository's clone and unregisters it.
func (m *Manager) Remove(name string) error {
	cfg, err := config.LoadFile(m.configPath)
	if err != nil {
		return err
	}

	idx := -1
	for i := range cfg.Repos {
		if cfg.Repos[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}

	clonePath := cfg.Repos[idx].Path
	cfg.Repos = append(cfg.Repos[:idx], cfg.Repos[idx+1:]...)
	if err := config.Save(cfg, m.configPath); err != nil {
		return errors.Wrap(err, "persisting repository removal")
	}

	// Only remove clones that actually live inside our cache. A config
	// edited by hand could point anywhere.
	if clonePath != "" && isWithin(m.cacheDir, clonePath) {
		if err := os.RemoveAll(clonePath); err != nil {
			return errors.Wrap(err, "removing repository clone")
		}
	}

	return nil
}

// Update pulls the latest changes for a repository.
// With an empty name, all registered repositories are updated; the first
// failure is reported after the remaining updates are attempted.
func (m *Manager) Update(name string) error {
	cfg, err := config.LoadFile(m.configPath)
	if err != nil {
		return err
	}

	if name != "" {
		repoCfg := cfg.Repo(name)
		if repoCfg == nil {
			return errors.Wrapf(ErrNotFound, "%q", name)
		}
		return git.Pull(repoCfg.Path)
	}

	var firstErr error
	for _, repoCfg := range cfg.Repos {
		if err := git.Pull(repoCfg.Path); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "updating %q", repoCfg.Name)
		}
	}
	return firstErr
}

func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
