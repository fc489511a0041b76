// Command rng16 lists, runs and verifies the rng16 generator variants and
// derives seeds from hardware readings.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
