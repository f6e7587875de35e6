package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/expedition/internal/cli"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints err on stderr in bold red when stderr supports colour.
func reportError(err error) {
	b := spans.New()
	b.Append("Error:", style.Identity().WithForeground(style.Red).Bold())
	b.Append(fmt.Sprintf(" %v\n", err), style.Identity())

	r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
	if rerr == nil {
		rerr = ui.Render(r, b)
	}
	if rerr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
