// stairmason-cli runs stair estimates from the terminal.
//
// Build:
//   go build -o stairmason-cli ./cmd/stairmason-cli

package main

import (
	"os"

	"github.com/piwi3910/StairMason/internal/cli"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
