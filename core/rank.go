package core

import (
	"sort"

	"github.com/huangsam/shoutout/schema"
)

// RankContributors sorts contributors by commit count in descending order
// and returns the top 'limit' entries. The sort is stable over the
// aggregation's first-seen order, so contributors with equal counts keep
// their relative order; ties are not broken alphabetically.
//
// A limit of 0 yields an empty ranked list. If limit exceeds the number of
// contributors, all of them are returned in sorted order. The input slice is
// not modified.
func RankContributors(counts []schema.ContributorCount, limit int) []schema.ContributorCount {
	ranked := make([]schema.ContributorCount, len(counts))
	copy(ranked, counts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Commits > ranked[j].Commits
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
