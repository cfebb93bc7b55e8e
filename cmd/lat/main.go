// Package main is the entry point for the lat CLI.
package main

import (
	"os"

	"github.com/haruki7049/lat/cmd/lat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
