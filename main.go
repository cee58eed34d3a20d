// main is the entry point for the shoutout CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/shoutout/cmd"
	"github.com/huangsam/shoutout/internal/contract"
)

// main maps the error taxonomy to stderr output and exit codes: usage
// errors print usage text, the limit validation failure prints its
// documented message, and external errors pass through as-is. An empty
// leaderboard is a success, not an error.
func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	var usageErr *contract.UsageError
	switch {
	case errors.As(err, &usageErr):
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n\n", usageErr)
		_, _ = fmt.Fprint(os.Stderr, cmd.UsageString())
		os.Exit(2)
	case errors.Is(err, contract.ErrInvalidLimit):
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	default:
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
