package repo

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/errors"
	"github.com/thoreinstein/skillsref/internal/repo"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured repository sources",
	Long:  `List all git repositories configured as skill sources.`,
	Example: `  # List all repositories
  skillsref repo list

  # Output as JSON
  skillsref repo list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd.OutOrStdout(), config.DefaultPath())
}

// runListWithWriter allows injecting a writer and config path for testing.
func runListWithWriter(w io.Writer, configPath string) error {
	mgr := repo.NewManager(configPath)

	repos, err := mgr.List()
	if err != nil {
		return errors.Wrap(err, "listing repositories")
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(repos), "encoding output")
	}

	if len(repos) == 0 {
		fmt.Fprintln(w, "No repositories configured.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add a repository with:")
		fmt.Fprintln(w, "  skillsref repo add <url>")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		bold.Sprint("NAME"), bold.Sprint("URL"), bold.Sprint("PATH"))

	for _, r := range repos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			color.GreenString(r.Name),
			r.URL,
			color.New(color.FgHiBlack).Sprint(r.Path))
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}
