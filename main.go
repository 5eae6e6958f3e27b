package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/novi/cmd"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/styles"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error(err.Error()))
		os.Exit(cli.ExitCodeFor(err))
	}
}
