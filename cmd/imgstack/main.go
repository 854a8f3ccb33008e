package main

import (
	"os"

	"github.com/imgstack/imgstack/internal/cli"
)

// Version information - set by ldflags during build
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	cli.SetVersion(version, gitCommit, buildTime)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
