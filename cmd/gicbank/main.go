// Package main is the entry point for the gicbank CLI.
package main

import (
	"os"

	"github.com/awesomegic/gicbank/cmd/gicbank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
