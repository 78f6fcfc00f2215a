// Command heatpath prints the least heat loss of a crucible route across a
// digit grid, once per configured constraint set.
//
//	heatpath [file...]
//
// With no file the grid is read from standard input.
package main

import (
	"fmt"
	"os"
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "heatpath: %v\n", err)
		os.Exit(1)
	}
}
