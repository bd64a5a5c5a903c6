// Command webforge bootstraps a web front-end project in the current directory.
package main

import (
	"os"

	"github.com/webforge-cli/webforge/internal/cli"
	"github.com/webforge-cli/webforge/internal/errors"
)

func main() {
	err := cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
