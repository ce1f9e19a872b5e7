// Command sway is the command line tool for sway projects.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sway/cmd/sway/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
