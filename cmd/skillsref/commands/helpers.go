package commands

import (
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/corpus"
)

// truncate shortens a string to maxLen runes, adding "..." if truncated.
// Slicing runes rather than bytes keeps multi-byte descriptions valid UTF-8.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// scanCorpus discovers every skill visible to the current configuration:
// the local skills directory, when set, plus all registered repositories.
func scanCorpus(cfg *config.Config) ([]corpus.Entry, error) {
	scanner := corpus.NewScanner(
		corpus.WithLogger(slog.Default()),
		corpus.WithExcludes(cfg.CompileExcludes()),
	)

	var entries []corpus.Entry
	if cfg.SkillsDir != "" {
		local, err := scanner.ScanDir(filepath.Clean(cfg.SkillsDir))
		if err != nil {
			return nil, err
		}
		entries = append(entries, local...)
	}

	entries = append(entries, scanner.ScanAll(cfg.Repos)...)
	return entries, nil
}
