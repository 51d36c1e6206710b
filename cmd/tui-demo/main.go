package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tuikit/terminal"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			// Restore terminal to sane state before printing
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTUI-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
