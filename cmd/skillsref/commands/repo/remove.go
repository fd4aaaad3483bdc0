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
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a repository source",
	Long: `Remove a repository from the configuration and delete its cached clone.

Only clones inside the skillsref cache directory are deleted; paths
pointing elsewhere are left untouched.`,
	Example: `  # Remove a repository
  skillsref repo remove community-skills`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	return runRemoveWithIO(args[0], cmd.OutOrStdout())
}

// runRemoveWithIO allows injecting a writer for testing.
func runRemoveWithIO(name string, w io.Writer) error {
	manager := repo.NewManager(config.DefaultPath())

	if err := manager.Remove(name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errors.NewUserError(
				errors.Newf("repository '%s' not found", name),
				"Run: skillsref repo list")
		}
		return err
	}

	fmt.Fprintf(w, "✓ Repository '%s' removed\n", name)
	return nil
}
