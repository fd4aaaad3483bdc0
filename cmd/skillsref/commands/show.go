package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/corpus"
	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/internal/skill"
	"github.com/thoreinstein/skillsref/internal/skill/parser"
)

var (
	showFormat string
	showBody   bool
)

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "yaml", "output format: yaml, json, toml")
	showCmd.Flags().BoolVar(&showBody, "body", false, "include the instruction body")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name-or-path>",
	Short: "Show a skill's metadata",
	Long: `Show the frontmatter of a skill.

The argument is either a path to a skill directory or the name of a
skill discoverable through the configuration. Names that resolve to
more than one skill are listed instead of shown.`,
	Example: `  # Show by path
  skillsref show ./skills/pdf

  # Show by name, as TOML
  skillsref show pdf --format toml

  # Include the markdown body
  skillsref show pdf --body`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// showOutput is the serialized representation of a skill.
type showOutput struct {
	Name        string            `json:"name" yaml:"name" toml:"name"`
	Description string            `json:"description" yaml:"description" toml:"description"`
	License     string            `json:"license,omitempty" yaml:"license,omitempty" toml:"license,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty" toml:"metadata,omitempty"`
	Source      string            `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Dir         string            `json:"dir" yaml:"dir" toml:"dir"`
	Body        string            `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	return runShowWithWriter(cmd.OutOrStdout(), args[0])
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(w io.Writer, arg string) error {
	dir, source, err := resolveSkillDir(w, arg)
	if err != nil || dir == "" {
		return err
	}

	p := parser.New()
	var s *skill.Skill
	if showBody {
		s, err = p.ParseFile(paths.SkillFile(dir))
	} else {
		s, err = p.ParseHeader(paths.SkillFile(dir))
	}
	if err != nil {
		return errors.Wrapf(err, "reading skill at %s", dir)
	}

	out := showOutput{
		Name:        s.Name,
		Description: s.Description,
		License:     s.License,
		Metadata:    s.Metadata,
		Source:      source,
		Dir:         dir,
	}
	if showBody {
		out.Body = s.Instructions
	}

	switch showFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(out), "encoding JSON")
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(out), "encoding TOML")
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return errors.Wrap(enc.Encode(out), "encoding YAML")
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", showFormat),
			"valid formats: yaml, json, toml")
	}
}

// resolveSkillDir maps the argument to a skill directory. A path that
// exists on disk wins; otherwise the corpus is searched by exact name.
// An empty dir with a nil error means the ambiguity was already reported.
func resolveSkillDir(w io.Writer, arg string) (dir, source string, err error) {
	if info, statErr := os.Stat(arg); statErr == nil && info.IsDir() {
		return arg, "", nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return "", "", errors.Wrap(err, "loading config")
	}
	entries, err := scanCorpus(cfg)
	if err != nil {
		return "", "", err
	}

	matches := corpus.FindByName(entries, arg)
	switch len(matches) {
	case 0:
		return "", "", errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "skill %q", arg),
			"Run: skillsref list")
	case 1:
		return matches[0].Dir, matches[0].Source(), nil
	default:
		fmt.Fprintf(w, "Skill %q exists in multiple sources:\n", arg)
		for _, m := range matches {
			fmt.Fprintf(w, "  %s  (%s)\n", m.Dir, m.Source())
		}
		fmt.Fprintln(w, "Show one by path instead.")
		return "", "", nil
	}
}
