package commands

import "github.com/thoreinstein/skillsref/cmd/skillsref/commands/repo"

func init() {
	rootCmd.AddCommand(repo.Cmd)
}
