package main

import (
	"fmt"
	"os"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/commands"
)

// Build info, injected via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := commands.Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
