// Package main provides the entry point for the searchwire CLI.
package main

import (
	"os"

	"github.com/searchwire/searchwire/cmd/searchwire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
