package main

import (
	"os"

	"github.com/mararual/practicegraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
