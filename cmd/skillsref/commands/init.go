package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/paths"
	"github.com/thoreinstein/skillsref/internal/skill"
	skillvalidator "github.com/thoreinstein/skillsref/internal/skill/validator"
	"github.com/thoreinstein/skillsref/pkg/frontmatter"
)

var (
	initName        string
	initDescription string
	initLicense     string
	initVersion     string
	initAuthor      string
	initDirs        string
	initForce       bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "skill name (prompted when omitted)")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "skill description")
	initCmd.Flags().StringVar(&initLicense, "license", "", "license (e.g. MIT)")
	initCmd.Flags().StringVar(&initVersion, "version", "", "skill version")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "skill author")
	initCmd.Flags().StringVar(&initDirs, "dirs", "", "comma-separated optional directories to create (scripts, references, assets)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing SKILL.md")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Scaffold a new skill directory",
	Long: `Create a new skill directory with a scaffolded SKILL.md file.

If [path] is provided, the skill is created there; its base name becomes
the default skill name. Without a path, a subdirectory named after the
skill is created in the current directory.

Details not provided via flags are prompted for interactively.`,
	Example: `  # Interactive scaffold
  skillsref init my-skill

  # Non-interactive
  skillsref init my-skill --name my-skill -d "Does things" --license MIT

  # With optional directories
  skillsref init my-skill --dirs scripts,references`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// nameSanitizer matches characters that are not allowed in a skill name.
var nameSanitizer = regexp.MustCompile(`[^a-z0-9-]+`)

// errInitFailed is a sentinel error that signals non-zero exit.
var errInitFailed = errors.New("skill initialization failed")

func sanitizeDefaultName(name string) string {
	sanitized := strings.ToLower(name)
	sanitized = nameSanitizer.ReplaceAllString(sanitized, "-")
	sanitized = strings.Trim(sanitized, "-")
	if sanitized == "" {
		return "new-skill"
	}
	return sanitized
}

func runInit(_ *cobra.Command, args []string) error {
	defaultName := "my-skill"
	if len(args) > 0 {
		defaultName = sanitizeDefaultName(filepath.Base(args[0]))
	}

	defaultLicense := "MIT"
	if cfg, err := config.Load(""); err == nil && cfg.DefaultLicense != "" {
		defaultLicense = cfg.DefaultLicense
	}

	scanner := bufio.NewScanner(os.Stdin)

	name := initName
	if name == "" {
		name = prompt(scanner, "Skill Name", defaultName)
	}

	if err := validateSkillName(name); err != nil {
		fmt.Printf("Error: %s\n", err)
		return errInitFailed
	}

	var absPath string
	var err error
	if len(args) > 0 {
		absPath, err = filepath.Abs(args[0])
	} else {
		absPath, err = filepath.Abs(name)
	}
	if err != nil {
		return errors.Wrap(err, "resolving path")
	}

	if filepath.Base(absPath) != name {
		fmt.Printf("Error: skill name %q must match directory name %q\n", name, filepath.Base(absPath))
		return errInitFailed
	}

	description := initDescription
	if description == "" {
		description = prompt(scanner, "Description", "Use this skill when the task needs [purpose]")
	}

	license := initLicense
	if license == "" {
		license = prompt(scanner, "License", defaultLicense)
	}

	version := initVersion
	if version == "" {
		version = prompt(scanner, "Version", "1.0.0")
	}

	author := initAuthor
	if author == "" {
		author = prompt(scanner, "Author", "")
	}

	selectedDirs := make(map[string]bool)
	if initDirs != "" {
		for _, d := range strings.Split(initDirs, ",") {
			d = strings.TrimSpace(d)
			if d != "" {
				selectedDirs[d] = true
			}
		}
	} else {
		fmt.Println("\nOptional Directories:")
		for _, d := range paths.OptionalSkillDirs() {
			if promptBool(scanner, fmt.Sprintf("Create '%s' directory?", d), false) {
				selectedDirs[d] = true
			}
		}
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		fmt.Printf("Creating directory %s...\n", absPath)
		if err := os.MkdirAll(absPath, 0o755); err != nil {
			return errors.Wrap(err, "creating directory")
		}
	}

	skillFile := paths.SkillFile(absPath)
	if _, err := os.Stat(skillFile); err == nil && !initForce {
		fmt.Printf("Error: %s already exists (use --force to overwrite)\n", skillFile)
		return errInitFailed
	}

	metadata := make(map[string]string)
	if version != "" {
		metadata[skill.MetadataVersion] = version
	}
	if author != "" {
		metadata[skill.MetadataAuthor] = author
	}

	body := `# Instructions

Describe what the agent should do when this skill applies.

## Guidelines

- Guideline 1
- Guideline 2

## Examples

When the user asks to [do something], you should...
`

	meta := struct {
		Name        string            `yaml:"name"`
		Description string            `yaml:"description"`
		License     string            `yaml:"license,omitempty"`
		Metadata    map[string]string `yaml:"metadata,omitempty"`
	}{
		Name:        name,
		Description: description,
		License:     license,
		Metadata:    metadata,
	}

	content, err := frontmatter.Format(meta, body)
	if err != nil {
		return errors.Wrap(err, "generating template")
	}

	fmt.Println("Writing SKILL.md...")
	if err := os.WriteFile(skillFile, content, 0o644); err != nil {
		return errors.Wrap(err, "writing SKILL.md")
	}

	if len(selectedDirs) > 0 {
		fmt.Println("Creating optional directories...")
		for dir := range selectedDirs {
			fullPath := filepath.Join(absPath, dir)
			if err := os.MkdirAll(fullPath, 0o755); err != nil {
				return errors.Wrapf(err, "creating %s", dir)
			}
			keepFile := filepath.Join(fullPath, ".keep")
			if err := os.WriteFile(keepFile, []byte(""), 0o644); err != nil {
				return errors.Wrapf(err, "creating .keep in %s", dir)
			}
		}
	}

	fmt.Printf("✓ Skill '%s' created at %s\n", name, skillFile)
	fmt.Println()
	fmt.Println("  Next steps:")
	fmt.Printf("    1. Edit %s with your skill's instructions\n", skillFile)
	fmt.Printf("    2. Run: skillsref validate %s\n", absPath)

	return nil
}

func prompt(scanner *bufio.Scanner, label, def string) string {
	fmt.Printf("%s", label)
	if def != "" {
		fmt.Printf(" [%s]", def)
	}
	fmt.Print(": ")

	if !scanner.Scan() {
		return def
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return def
	}
	return input
}

func promptBool(scanner *bufio.Scanner, label string, def bool) bool {
	defStr := "y/N"
	if def {
		defStr = "Y/n"
	}
	fmt.Printf("%s [%s]: ", label, defStr)

	if !scanner.Scan() {
		return def
	}
	input := strings.TrimSpace(strings.ToLower(scanner.Text()))
	if input == "" {
		return def
	}
	return input == "y" || input == "yes"
}

// validateSkillName checks a skill name against the frontmatter rules
// before any directory is created.
func validateSkillName(name string) error {
	v := skillvalidator.New()
	errs := v.Validate(&skill.Skill{Name: name, Description: "placeholder"})
	for _, err := range errs {
		var valErr *skillvalidator.ValidationError
		if errors.As(err, &valErr) && valErr.Field == "name" {
			return errors.Newf("invalid skill name: %s", valErr.Message)
		}
	}
	return nil
}
