// Package main is the entrypoint for the flightrisk CLI.
// It delegates all command handling to the cmd package.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toyinlola/flightrisk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrUnsafe) {
			fmt.Fprintf(os.Stderr, "flightrisk: %v\n", err)
		}
		os.Exit(1)
	}
}
