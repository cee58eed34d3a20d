package core

import (
	"strings"

	"github.com/huangsam/shoutout/schema"
)

// CountAuthors aggregates raw identity lines into per-identity commit
// counts. Each line is trimmed of surrounding whitespace; lines that become
// empty are dropped, which guards against blank or malformed log entries.
// Identities are grouped by exact string equality.
//
// The returned slice is ordered by first appearance in the input. The ranker
// relies on that ordering for its tie-break, so it must stay stable.
func CountAuthors(lines []string) []schema.ContributorCount {
	index := make(map[string]int, len(lines))
	counts := make([]schema.ContributorCount, 0, len(lines))

	for _, line := range lines {
		identity := strings.TrimSpace(line)
		if identity == "" {
			continue
		}
		if i, ok := index[identity]; ok {
			counts[i].Commits++
			continue
		}
		index[identity] = len(counts)
		counts = append(counts, schema.ContributorCount{Identity: identity, Commits: 1})
	}

	return counts
}

// SplitAuthorLog splits raw log query output into identity lines. Carriage
// returns are left in place; CountAuthors trims them with the rest of the
// surrounding whitespace.
func SplitAuthorLog(out []byte) []string {
	if len(out) == 0 {
		return nil
	}
	return strings.Split(string(out), "\n")
}
