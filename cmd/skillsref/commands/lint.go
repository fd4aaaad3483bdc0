package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/lint"
	"github.com/thoreinstein/skillsref/internal/validator"
)

var lintJSON bool

func init() {
	lintCmd.Flags().BoolVar(&lintJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint <path>...",
	Short: "Lint skill instruction bodies",
	Long: `Lint the markdown body of one or more skills.

Checks that the body opens with a heading, that fenced code blocks
declare a language, and that relative links and images resolve to files
inside the skill directory.

Exit codes:
  0 - No lint errors
  1 - At least one skill has lint errors`,
	Example: `  # Lint one skill
  skillsref lint ./skills/pdf

  # Lint everything under skills/
  skillsref lint ./skills/*`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	return runLintWithWriter(cmd.OutOrStdout(), args)
}

// runLintWithWriter allows injecting a writer for testing.
func runLintWithWriter(w io.Writer, args []string) error {
	format := validator.FormatText
	if lintJSON {
		format = validator.FormatJSON
	}
	reporter := validator.NewReporter(w, format)

	linter := lint.New()
	failed := false
	for _, arg := range args {
		result, err := linter.LintDir(arg)
		if err != nil {
			return errors.Wrapf(err, "linting %s", arg)
		}
		if !lintJSON && len(args) > 1 {
			fmt.Fprintf(w, "%s:\n", arg)
		}
		if err := reporter.Report(result); err != nil {
			return err
		}
		if result.HasErrors() {
			failed = true
		}
	}

	if failed {
		return errors.ErrLintFailed
	}
	return nil
}
