// Command tripid prints identifiers for manual trip request testing.
package main

import (
	"fmt"
	"os"

	"github.com/tessro/tripid/internal/cli"
	"github.com/tessro/tripid/internal/logging"
)

func main() {
	defer logging.LogPanic("main")

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tripid: %v\n", err)
		os.Exit(1)
	}
}
