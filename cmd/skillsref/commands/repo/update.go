package repo

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/repo"
)

func init() {
	Cmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Update repository sources",
	Long: `Update repository sources by pulling latest changes.

If a name is provided, only that repository is updated.
If no name is provided, all repositories are updated.`,
	Example: `  # Update all repositories
  skillsref repo update

  # Update specific repository
  skillsref repo update community-skills`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	return runUpdateWithIO(args, cmd.OutOrStdout())
}

// runUpdateWithIO allows injecting a writer for testing.
func runUpdateWithIO(args []string, w io.Writer) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}

	configPath := config.DefaultPath()
	manager := repo.NewManager(configPath)

	if name != "" {
		fmt.Fprintf(w, "Updating %s... ", name)
		if err := manager.Update(name); err != nil {
			fmt.Fprintln(w, "✗ failed")
			return handleUpdateError(name, err)
		}
		fmt.Fprintln(w, "✓ done")

		if cfg, err := config.LoadFile(configPath); err == nil {
			if repoCfg := cfg.Repo(name); repoCfg != nil {
				printValidationWarnings(w, repo.ValidateContent(repoCfg.Path))
			}
		}
		return nil
	}

	repos, err := manager.List()
	if err != nil {
		return errors.Wrap(err, "listing repositories")
	}

	if len(repos) == 0 {
		fmt.Fprintln(w, "No repositories configured.")
		return nil
	}

	fmt.Fprintf(w, "Updating %d repositories...\n", len(repos))
	err = manager.Update("")

	var warnings []repo.ValidationWarning
	for _, r := range repos {
		warnings = append(warnings, repo.ValidateContent(r.Path)...)
	}
	printValidationWarnings(w, warnings)

	if err != nil {
		return errors.NewSystemError(err,
			"Check your network connection and repository access")
	}
	fmt.Fprintln(w, "✓ done")
	return nil
}

// handleUpdateError returns a user-friendly error for known failure modes.
func handleUpdateError(name string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return errors.NewUserError(
			errors.Newf("repository '%s' not found", name),
			"Run: skillsref repo list")
	}
	return errors.NewSystemError(
		errors.Wrapf(err, "updating '%s'", name),
		"Check your network connection and repository access")
}
