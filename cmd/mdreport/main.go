// Package main is the entry point for the mdreport CLI.
package main

import (
	"os"

	"github.com/hackebrot/mdreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
