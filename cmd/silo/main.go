// silo CLI - draws bounded random values and formats collections.
package main

import (
	"os"

	"silo/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
