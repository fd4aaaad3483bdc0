package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/skillsref/internal/config"
)

// Tests below exercise the config bookkeeping without running git: Add is
// only tested up to its URL/name validation, while Remove and List operate
// on configs seeded directly.

func seedConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.Save(cfg, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAdd_RejectsNonURL(t *testing.T) {
	m := NewManagerWithCache(filepath.Join(t.TempDir(), "config.yaml"), t.TempDir())

	_, err := m.Add("not-a-url")
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("error = %v, want ErrInvalidURL", err)
	}
}

func TestAdd_RejectsBadName(t *testing.T) {
	m := NewManagerWithCache(filepath.Join(t.TempDir(), "config.yaml"), t.TempDir())

	_, err := m.Add("https://example.com/org/skills.git", WithName("Bad_Name"))
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("error = %v, want ErrInvalidName", err)
	}
}

func TestAdd_RejectsCollision(t *testing.T) {
	cache := t.TempDir()
	cfgPath := seedConfig(t, &config.Config{
		Version: 1,
		Repos: []config.RepoConfig{
			{Name: "skills", URL: "https://example.com/a.git", Path: filepath.Join(cache, "skills")},
		},
	})
	m := NewManagerWithCache(cfgPath, cache)

	_, err := m.Add("https://example.com/org/skills.git")
	if !errors.Is(err, ErrNameCollision) {
		t.Fatalf("error = %v, want ErrNameCollision", err)
	}
}

func TestList(t *testing.T) {
	cfgPath := seedConfig(t, &config.Config{
		Version: 1,
		Repos: []config.RepoConfig{
			{Name: "a", URL: "https://example.com/a.git", Path: "/cache/a"},
			{Name: "b", URL: "https://example.com/b.git", Path: "/cache/b"},
		},
	})
	m := NewManagerWithCache(cfgPath, t.TempDir())

	repos, err := m.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(repos) != 2 {
		t.Errorf("List() = %d repos, want 2", len(repos))
	}
}

func TestList_EmptyConfig(t *testing.T) {
	m := NewManagerWithCache(filepath.Join(t.TempDir(), "absent.yaml"), t.TempDir())

	repos, err := m.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(repos) != 0 {
		t.Errorf("List() = %d repos, want 0", len(repos))
	}
}

func TestRemove(t *testing.T) {
	cache := t.TempDir()
	clone := filepath.Join(cache, "skills")
	if err := os.MkdirAll(filepath.Join(clone, "skills"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfgPath := seedConfig(t, &config.Config{
		Version: 1,
		Repos: []config.RepoConfig{
			{Name: "skills", URL: "https://example.com/skills.git", Path: clone},
		},
	})
	m := NewManagerWithCache(cfgPath, cache)

	if err := m.Remove("skills"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	if _, err := os.Stat(clone); !os.IsNotExist(err) {
		t.Error("clone should be deleted")
	}

	repos, _ := m.List()
	if len(repos) != 0 {
		t.Errorf("List() after remove = %d repos, want 0", len(repos))
	}
}

func TestRemove_PreservesExternalPaths(t *testing.T) {
	external := t.TempDir() // not inside the cache
	cfgPath := seedConfig(t, &config.Config{
		Version: 1,
		Repos: []config.RepoConfig{
			{Name: "local", URL: "https://example.com/local.git", Path: external},
		},
	})
	m := NewManagerWithCache(cfgPath, t.TempDir())

	if err := m.Remove("local"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := os.Stat(external); err != nil {
		t.Error("paths outside the cache must never be deleted")
	}
}

func TestRemove_NotFound(t *testing.T) {
	m := NewManagerWithCache(filepath.Join(t.TempDir(), "config.yaml"), t.TempDir())

	if err := m.Remove("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := NewManagerWithCache(filepath.Join(t.TempDir(), "config.yaml"), t.TempDir())

	if err := m.Update("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
