package main

import (
	"fmt"
	"os"

	"github.com/saravenpi/sup/cmd"
)

// Version information set via ldflags at build time
var version = "1.0.0"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
