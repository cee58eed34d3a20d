// Package contract provides interfaces and shared utilities for the shoutout
// CLI's internal architecture.
package contract

import "context"

// GitClient defines the log query capability shoutout needs from the
// version-control system. The repository is treated as an opaque external
// collaborator; this interface allows the ranking pipeline to be tested with
// an in-memory identity stream instead of a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetAuthorLog returns one "Display Name <email>" line per commit
	// authored after the since expression. Both repoPath and since are
	// passed to git verbatim; the tool never interprets them.
	GetAuthorLog(ctx context.Context, repoPath string, since string) ([]byte, error)
}
