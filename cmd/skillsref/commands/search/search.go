// Package search provides the search command for finding skills across the
// configured corpus.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/corpus"
	"github.com/thoreinstein/skillsref/internal/errors"
)

var (
	repoFilter  string
	jsonOutput  bool
	interactive bool
)

func init() {
	Cmd.Flags().StringVar(&repoFilter, "repo", "", "filter by repository name")
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	Cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a result with a fuzzy finder")
}

// Cmd is the search command.
var Cmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for skills",
	Long: `Search for skills across the local skills directory and all
registered repositories.

The search is case-insensitive and matches against skill names and
descriptions. Results are sorted by match quality: exact name matches
first, then prefix matches, then substring matches, then
description-only matches.

If no query is provided, all skills are listed (subject to filters).`,
	Example: `  # Search for skills mentioning "deploy"
  skillsref search deploy

  # Search within one repository
  skillsref search --repo=official deploy

  # Pick interactively
  skillsref search -i

  # Output as JSON
  skillsref search deploy --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	return runSearchWithWriter(cmd.OutOrStdout(), args)
}

// runSearchWithWriter allows injecting a writer for testing.
func runSearchWithWriter(w io.Writer, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	cfg, err := config.Load("")
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	if cfg.SkillsDir == "" && len(cfg.Repos) == 0 {
		fmt.Fprintln(w, "No skills configured.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add a repository with:")
		fmt.Fprintln(w, "  skillsref repo add <url>")
		return nil
	}

	scanner := corpus.NewScanner(
		corpus.WithExcludes(cfg.CompileExcludes()),
	)

	var entries []corpus.Entry
	if cfg.SkillsDir != "" {
		local, err := scanner.ScanDir(cfg.SkillsDir)
		if err != nil {
			return errors.Wrap(err, "scanning skills directory")
		}
		entries = append(entries, local...)
	}
	entries = append(entries, scanner.ScanAll(cfg.Repos)...)

	results := corpus.Search(entries, query, corpus.SearchOptions{
		RepoName: repoFilter,
	})

	if interactive {
		return runInteractiveSearch(w, results)
	}
	if jsonOutput {
		return outputJSON(w, results)
	}
	return outputTabular(w, results)
}

// outputJSON outputs entries in JSON format.
func outputJSON(w io.Writer, entries []corpus.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(entries), "encoding output")
}

// outputTabular outputs entries in a human-readable table format.
func outputTabular(w io.Writer, entries []corpus.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		bold.Sprint("NAME"), bold.Sprint("SOURCE"), bold.Sprint("DESCRIPTION"))

	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			color.GreenString(e.Name),
			e.Source(),
			color.New(color.FgHiBlack).Sprint(truncate(e.Description, 50)))
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}

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
