package main

import (
	"fmt"
	"os"

	"github.com/de-tools/feed-atlas/pkg/runtime/terminal"
	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/feed-atlas/pkg/store/norms"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Formats: export.NewDefaultRegistry(),
		Store:   norms.NewStore(),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
