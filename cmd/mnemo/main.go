// Package main is the entry point for the mnemo CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/mnemo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
