// Package main is the entry point for the abscrub CLI.
package main

import (
	"os"

	"github.com/jmylchreest/abscrub/cmd/abscrub/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
