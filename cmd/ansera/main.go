// Command ansera is the entry point for the Ansera CLI.
package main

import (
	"os"

	"github.com/custodia-labs/ansera-cli/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
