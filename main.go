// Package main is the entry point for the termframe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/termframe/termframe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
