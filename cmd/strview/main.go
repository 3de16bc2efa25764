package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func main() {
	cmd := newRootCmd(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
