// cmd/tjanseauktion/main.go
//
// Entry point. All wiring lives in internal/cli; this just surfaces errors.

package main

import (
	"fmt"
	"os"

	"github.com/askelund/tjanseauktion/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
