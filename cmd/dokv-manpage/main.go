package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dokv/cmd/dokv"
	"github.com/arthur-debert/dokv/internal/version"
)

func main() {
	rootCmd := dokv.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOKV",
		Section: "1",
		Source:  "dokv " + version.Version,
		Manual:  "dokv manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
