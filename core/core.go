// Package core holds the contributor-ranking pipeline: fetch the author log,
// aggregate identities, rank by commit count, hand off to the reporter.
package core
