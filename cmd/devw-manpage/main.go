package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/devw-tools/devw/cmd/devw"
	"github.com/devw-tools/devw/internal/version"
)

func main() {
	rootCmd := devw.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DEVW",
		Section: "1",
		Source:  "devw " + version.Version,
		Manual:  "devw manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
