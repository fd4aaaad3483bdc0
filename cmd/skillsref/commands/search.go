package commands

import "github.com/thoreinstein/skillsref/cmd/skillsref/commands/search"

func init() {
	rootCmd.AddCommand(search.Cmd)
}
