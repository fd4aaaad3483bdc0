package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/layout"
	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/internal/skill/parser"
	skillvalidator "github.com/thoreinstein/skillsref/internal/skill/validator"
	"github.com/thoreinstein/skillsref/internal/validator"
)

var (
	validateStrict bool
	validateJSON   bool
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"treat warnings as errors")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Validate skill directories",
	Long: `Validate one or more skill directories.

Each path must be a directory containing a SKILL.md file. Validation
covers the frontmatter (name format and length, description length,
metadata entries), the match between the name field and the directory
name, and the directory layout (required SKILL.md, recognized optional
subdirectories).

Use --strict to fail on warnings as well as errors.
Use --json for machine-readable output.

Exit codes:
  0 - All skills are valid
  1 - At least one skill failed validation`,
	Example: `  # Validate one skill
  skillsref validate ./skills/pdf

  # Validate several, failing on warnings
  skillsref validate ./skills/* --strict

  # Machine-readable output
  skillsref validate ./skills/pdf --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	return runValidateWithWriter(cmd.OutOrStdout(), args)
}

// runValidateWithWriter allows injecting a writer for testing.
func runValidateWithWriter(w io.Writer, args []string) error {
	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	reporter := validator.NewReporter(w, format)

	failed := false
	for _, arg := range args {
		result := validateSkillDir(arg)
		if !validateJSON && len(args) > 1 {
			fmt.Fprintf(w, "%s:\n", arg)
		}
		if err := reporter.Report(result); err != nil {
			return err
		}
		if result.HasErrors() || (validateStrict && result.HasWarnings()) {
			failed = true
		}
	}

	if failed {
		return errors.ErrValidationFailed
	}
	return nil
}

// validateSkillDir runs every check against a single skill directory and
// merges the outcomes into one result.
func validateSkillDir(dir string) *validator.Result {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		absDir = dir
	}

	result := layout.Check(absDir)

	skillFile := paths.SkillFile(absDir)
	p := parser.New()
	s, err := p.ParseFile(skillFile)
	if err != nil {
		// Layout already reported a missing SKILL.md.
		if !errors.Is(err, os.ErrNotExist) {
			result.AddError("frontmatter", formatParseError(err), nil)
		}
		return result
	}

	v := skillvalidator.New()
	for _, verr := range v.ValidateWithPath(s, skillFile) {
		var valErr *skillvalidator.ValidationError
		if errors.As(verr, &valErr) {
			result.AddError(valErr.Field, valErr.Message, valErr.Value)
		} else {
			result.AddError("skill", verr.Error(), nil)
		}
	}

	return result
}

// formatParseError extracts a user-friendly message from parse errors.
func formatParseError(err error) string {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return "SKILL.md not found in directory"
		}
		return parseErr.Err.Error()
	}
	return err.Error()
}
