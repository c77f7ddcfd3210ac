package main

import (
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Fit GOMAXPROCS to container CPU limits so the scan fan-out does
	// not oversubscribe. The log output is noise for a CLI; discard it.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	Execute()
}
