package main

import (
	"os"
	// Embedded IANA database so zones resolve on hosts without zoneinfo
	_ "time/tzdata"

	"github.com/nickromney-org/localtime/cmd"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cmd.SetVersionInfo(Version, BuildTime, GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
