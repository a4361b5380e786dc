// Command vibemanga is a thin CLI wiring layer over the core library
// scanning, indexing, matching, renaming, and deduplication packages. It
// builds core components, renders their results, and maps core errors to
// exit codes; it contains no domain logic of its own.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
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

// exitCode maps a core error to the process exit status spec section 6
// defines: 2 for a precondition failure, 130 for cancellation, 1 otherwise.
func exitCode(err error) int {
	switch {
	case errors.Is(err, corefail.ErrPrecondition):
		return 2
	case errors.Is(err, corefail.ErrCancelled), errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}
