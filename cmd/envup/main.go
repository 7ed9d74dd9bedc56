package main

import (
	"fmt"
	"os"

	"github.com/danieljhkim/envup/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
