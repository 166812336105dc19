package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iudanet/clubsync/internal/client/cli"
	"github.com/iudanet/clubsync/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	c := cli.New(iocli.NewStdio(), nil)
	if err := c.Execute(context.Background(), versionString(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
}
