package main

import (
	"fmt"
	"os"

	"github.com/solarwise/solarwise-carbon/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[solarwise] Error: %v\n", err)
		os.Exit(1)
	}
}
