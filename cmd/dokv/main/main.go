package main

import (
	"os"

	"github.com/arthur-debert/dokv/cmd/dokv"
	"github.com/arthur-debert/dokv/pkg/ui"
)

func main() {
	rootCmd := dokv.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr == nil {
			_ = r.RenderError(err)
		}
		os.Exit(1)
	}
}
