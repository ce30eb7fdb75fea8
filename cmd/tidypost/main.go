// Package main is the entry point for the tidypost CLI.
package main

import (
	"os"

	"github.com/tidypost/tidypost/cmd/tidypost/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
