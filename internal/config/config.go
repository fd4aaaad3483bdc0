package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/pkg/fileutil"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// SkillsDir is the default corpus directory used by list and lint when
	// no path argument is given.
	SkillsDir string `mapstructure:"skills_dir" yaml:"skills_dir,omitempty"`

	// DefaultLicense seeds the license field of newly scaffolded skills.
	DefaultLicense string `mapstructure:"default_license" yaml:"default_license,omitempty"`

	// Excludes are glob patterns for directory names skipped during corpus
	// scanning (e.g. "draft-*").
	Excludes []string `mapstructure:"excludes" yaml:"excludes,omitempty"`

	// Repos are the registered skill repositories.
	Repos []RepoConfig `mapstructure:"repos" yaml:"repos,omitempty"`
}

// RepoConfig describes one registered skill repository.
type RepoConfig struct {
	// Name is the short identifier used in CLI output and cache paths.
	Name string `mapstructure:"name" yaml:"name"`

	// URL is the git URL the repository was cloned from.
	URL string `mapstructure:"url" yaml:"url"`

	// Path is the local clone inside the repository cache.
	Path string `mapstructure:"path" yaml:"path"`
}

// Repo returns the repository with the given name, or nil.
func (c *Config) Repo(name string) *RepoConfig {
	for i := range c.Repos {
		if c.Repos[i].Name == name {
			return &c.Repos[i]
		}
	}
	return nil
}

// Init initializes Viper with defaults and search paths.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("SKILLSREF")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("default_license", "MIT")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// An explicitly requested file must exist.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// Save writes the configuration to the given path atomically, creating the
// parent directory when needed.
func Save(cfg *Config, path string) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Wrap(errors.Join(errs...), "refusing to save invalid config")
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	return fileutil.AtomicWriteYAML(path, cfg)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(paths.ConfigDir(), "config.yaml")
}

// LoadFile reads a config file directly, bypassing viper's global state.
// The repo manager uses this for read-modify-write cycles.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Version: 1}, nil
		}
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg, err := parseYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}
