package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillsref/internal/config"
	"github.com/thoreinstein/skillsref/internal/corpus"
	"github.com/thoreinstein/skillsref/internal/errors"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List skills",
	Long: `List skills from the local skills directory and all registered
repositories.

If [path] is provided, only that directory is scanned; its immediate
subdirectories are treated as skills.`,
	Example: `  # List everything the configuration can see
  skillsref list

  # List skills under a specific directory
  skillsref list ./skills

  # Machine-readable output
  skillsref list --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	return runListWithWriter(cmd.OutOrStdout(), args)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer, args []string) error {
	var entries []corpus.Entry
	if len(args) > 0 {
		scanner := corpus.NewScanner()
		local, err := scanner.ScanDir(args[0])
		if err != nil {
			return errors.Wrap(err, "scanning directory")
		}
		entries = local
	} else {
		cfg, err := config.Load("")
		if err != nil {
			return errors.Wrap(err, "loading config")
		}
		entries, err = scanCorpus(cfg)
		if err != nil {
			return err
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Source() < entries[j].Source()
	})

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "encoding output")
	}

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
			truncate(e.Description, 60))
	}
	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}
