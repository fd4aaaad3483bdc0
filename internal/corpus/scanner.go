package corpus

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/gobwas/glob"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/pkg/frontmatter"
)

// Scanner discovers skills in repository clones and local directories.
// A broken skill never aborts a scan; it is logged and skipped.
type Scanner struct {
	logger  *slog.Logger
	exclude []glob.Glob
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithLogger sets the logger used for skipped-entry warnings.
func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) { s.logger = logger }
}

// WithExcludes sets glob patterns matched against skill directory names.
// Matching skills are omitted from scan results.
func WithExcludes(patterns []glob.Glob) ScannerOption {
	return func(s *Scanner) { s.exclude = patterns }
}

// NewScanner creates a Scanner that logs warnings to stderr.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// skillMeta holds the frontmatter fields a scan extracts.
type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ScanDir scans a directory whose immediate children are skill directories.
// Entries without a SKILL.md are skipped silently; unreadable or unparseable
// ones are logged and skipped.
func (s *Scanner) ScanDir(root string) ([]Entry, error) {
	return s.scan(root, "", "")
}

// ScanRepo scans the skills/ directory of a repository clone.
func (s *Scanner) ScanRepo(repo config.RepoConfig) ([]Entry, error) {
	return s.scan(filepath.Join(repo.Path, "skills"), repo.Name, repo.URL)
}

func (s *Scanner) scan(root, repoName, repoURL string) ([]Entry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		if os.IsPermission(err) {
			s.logger.Warn("permission denied reading skills directory",
				"path", root,
				"error", err)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading skills directory %s", root)
	}

	skills := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() || s.excluded(entry.Name()) {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		skillPath := filepath.Join(dir, paths.SkillFileName)
		file, err := os.Open(skillPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			s.logger.Warn("failed to open skill file",
				"path", skillPath,
				"error", err)
			continue
		}

		var meta skillMeta
		err = frontmatter.ParseHeader(file, &meta)
		file.Close()
		if err != nil {
			s.logger.Warn("failed to parse skill frontmatter",
				"path", skillPath,
				"error", err)
			continue
		}

		// Directory name stands in when the frontmatter omits a name.
		name := meta.Name
		if name == "" {
			name = entry.Name()
		}

		rel := entry.Name()
		if repoName != "" {
			rel = filepath.Join("skills", entry.Name())
		}

		skills = append(skills, Entry{
			Name:        name,
			Description: meta.Description,
			RepoName:    repoName,
			RepoURL:     repoURL,
			Dir:         dir,
			Path:        rel,
		})
	}

	return skills, nil
}

func (s *Scanner) excluded(name string) bool {
	for _, g := range s.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// ScanAll scans multiple repositories concurrently with a worker pool
// capped at GOMAXPROCS. A repository that fails to scan is logged and
// contributes nothing; the rest still return their skills.
func (s *Scanner) ScanAll(repos []config.RepoConfig) []Entry {
	if len(repos) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if len(repos) < workers {
		workers = len(repos)
	}

	work := make(chan config.RepoConfig, len(repos))
	results := make(chan []Entry, len(repos))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for repo := range work {
				skills, err := s.ScanRepo(repo)
				if err != nil {
					s.logger.Warn("failed to scan repository",
						"repo", repo.Name,
						"path", repo.Path,
						"error", err)
					results <- nil
					continue
				}
				results <- skills
			}
		}()
	}

	for _, repo := range repos {
		work <- repo
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []Entry
	for skills := range results {
		all = append(all, skills...)
	}
	return all
}
