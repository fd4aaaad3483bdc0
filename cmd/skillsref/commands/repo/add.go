package repo

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/repo"
)

var nameFlag string

func init() {
	addCmd.Flags().StringVar(&nameFlag, "name", "", "custom name for the repository")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a repository source",
	Long: `Add a git repository as a source of skills.

The repository is shallow cloned to the local cache. The repository name
is derived from the URL unless overridden with --name.`,
	Example: `  # Add from GitHub
  skillsref repo add https://github.com/example/community-skills.git

  # Add with custom name
  skillsref repo add https://github.com/example/skills.git --name my-skills

  # Add from private repo (SSH)
  skillsref repo add git@github.com:org/private-skills.git`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	return runAddWithIO(args, cmd.OutOrStdout())
}

// runAddWithIO allows injecting a writer for testing.
func runAddWithIO(args []string, w io.Writer) error {
	url := args[0]

	manager := repo.NewManager(config.DefaultPath())

	var opts []repo.Option
	if nameFlag != "" {
		opts = append(opts, repo.WithName(nameFlag))
	}

	repoConfig, err := manager.Add(url, opts...)
	if err != nil {
		return handleAddError(err)
	}

	fmt.Fprintf(w, "✓ Repository '%s' added from %s\n", repoConfig.Name, url)
	fmt.Fprintf(w, "  Cached at: %s\n", repoConfig.Path)

	printValidationWarnings(w, repo.ValidateContent(repoConfig.Path))

	return nil
}

// handleAddError returns a user-friendly error for known failure modes.
func handleAddError(err error) error {
	switch {
	case errors.Is(err, repo.ErrInvalidURL):
		return errors.NewUserError(err, "provide an https:// or git@ URL")
	case errors.Is(err, repo.ErrInvalidName):
		return errors.NewUserError(err, "names are lowercase alphanumeric with hyphens")
	case errors.Is(err, repo.ErrNameCollision):
		return errors.NewUserError(err, "pick another name with --name")
	default:
		return err
	}
}
