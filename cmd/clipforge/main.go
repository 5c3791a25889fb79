package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"clipforge/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes unrecoverable input and configuration problems
// from tool failures so scripts can tell a bad invocation apart from a
// flaky encode.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if services.Fatal(err) {
		return 2
	}
	return 1
}
