// SPDX-License-Identifier: MIT
//
// File: main.go
// Role: Entry point and exit-code mapping.

// Command sement resolves, compares and prepares SEMENTs read from files.
//
// Usage:
//
//	sement resolve FILE
//	sement compare GOLD ACTUAL
//	sement prepare --config CFG FILE
//	sement signature --config CFG PRED...
//
// Files hold one or more SEMENTs in the bracketed text notation.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess  = 0
	exitMismatch = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command with args and maps its error to an exit code.
func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errNotIsomorphic):
		return exitMismatch
	default:
		fmt.Fprintln(os.Stderr, "sement:", err)
		return exitError
	}
}
