package main

import (
	"os"

	"github.com/devw-tools/devw/cmd/devw"
)

func main() {
	rootCmd := devw.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		devw.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
