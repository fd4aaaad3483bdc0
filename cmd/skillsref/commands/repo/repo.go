// Package repo provides CLI commands for managing skill repositories.
package repo

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/repo"
)

// Cmd is the root repo command.
var Cmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage skill repositories",
	Long: `Manage git repositories that provide shared skills.

A skill repository has a skills/ directory whose subdirectories each
contain a SKILL.md file. Repositories are shallow cloned into a local
cache for discovery and search.`,
	Example: `  # Add a repository
  skillsref repo add https://github.com/example/skills.git

  # List configured repositories
  skillsref repo list

  # Update all repositories
  skillsref repo update

  # Remove a repository
  skillsref repo remove community-skills`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// printValidationWarnings outputs content warnings after clone or update.
func printValidationWarnings(w io.Writer, warnings []repo.ValidationWarning) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "⚠ Validation warnings:")
	for _, warn := range warnings {
		fmt.Fprintf(w, "  %s: %s\n", warn.Path, warn.Message)
	}
}
