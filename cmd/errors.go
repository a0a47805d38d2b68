package cmd

import (
	"fmt"
	"os"
)

// PrintError prints a short message on stderr, or the underlying
// technical error when --verbose is set. It never exits: the caller
// decides whether the condition is fatal.
func PrintError(userMsg string, technicalErr error) {
	if verbose && technicalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
		return
	}
	fmt.Fprintln(os.Stderr, userMsg)
}

// HandleFatalError reports an unrecoverable error and terminates.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}
