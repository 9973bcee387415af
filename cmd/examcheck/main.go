// Package main provides the entry point for the examcheck CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scorely/examcheck/cmd/examcheck/cmd"
	pkgerrors "github.com/scorely/examcheck/pkg/errors"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cmd.Execute(version, commit, date); err != nil {
		// Flagged disagreements are a distinct exit code so CI pipelines
		// can pause for human review without parsing output.
		if errors.Is(err, pkgerrors.ErrConfirmationRequired) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
