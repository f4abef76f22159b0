// Package main provides the mortalidash CLI: a dashboard and export tool
// over the 2019 Colombian non-fetal mortality datasets.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
