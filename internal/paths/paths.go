package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is used to namespace config and cache directories.
const AppName = "skillsref"

// SkillFileName is the required metadata file inside every skill directory.
const SkillFileName = "SKILL.md"

// Optional subdirectories a skill directory may carry alongside SKILL.md.
const (
	ScriptsDir    = "scripts"
	ReferencesDir = "references"
	AssetsDir     = "assets"
)

// OptionalSkillDirs returns the optional subdirectory names in display order.
func OptionalSkillDirs() []string {
	return []string{ScriptsDir, ReferencesDir, AssetsDir}
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm (0700) is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// CacheHome returns the XDG cache home directory.
// On Linux: ~/.cache
// On macOS: ~/Library/Caches
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the directory holding the skillsref config file.
// Returns: <ConfigHome>/skillsref/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ReposCacheDir returns the directory for cached repository clones.
// Returns: <CacheHome>/skillsref/repos/
func ReposCacheDir() string {
	return filepath.Join(CacheHome(), AppName, "repos")
}

// SkillFile returns the path to the SKILL.md inside a skill directory.
func SkillFile(skillDir string) string {
	return filepath.Join(skillDir, SkillFileName)
}
