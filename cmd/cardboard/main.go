// Package main is the entry point of the cardboard CLI.
package main

import (
	"runtime"

	"github.com/bnema/cardboard/internal/cli/cmd"
	"github.com/bnema/cardboard/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = ""
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
