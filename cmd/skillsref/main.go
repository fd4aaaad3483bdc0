// Package main is the entry point for the skillsref CLI.
package main

import (
	"os"

	"github.com/thoreinstein/skillsref/cmd/skillsref/commands"
	"github.com/thoreinstein/skillsref/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
