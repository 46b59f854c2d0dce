package main

import (
	"fmt"
	"os"

	"github.com/apimgr/courtside/src/cmd"
	"github.com/apimgr/courtside/src/paths"
)

func main() {
	// Directories must exist before logging or config touch the disk.
	if err := paths.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
