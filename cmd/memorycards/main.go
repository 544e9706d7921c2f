// Package main is the entry point of the memorycards server and tools.
package main

import (
	"os"

	"github.com/phrazzld/memory-cards/cmd/memorycards/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
