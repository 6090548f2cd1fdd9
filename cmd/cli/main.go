// Package main is the entry point for the peopled CLI binary.
package main

import (
	"os"

	cli "peopled/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
