// Package schema has models and constants shared by all parts of shoutout.
package schema

// ContributorCount is the commit tally for a single normalized identity.
// Identity is the raw "Display Name <email>" string emitted by the log query;
// two spellings of the same human are two identities.
type ContributorCount struct {
	Identity string `json:"identity"` // Author identity as "Display Name <email>"
	Commits  int    `json:"commits"`  // Number of commits authored in the window
}

// Leaderboard is the final artifact of a run: the ranked, length-limited
// contributor list plus the inputs the reporter needs to echo back.
//
// Total is the number of distinct contributors seen before truncation.
// The reporter uses it to tell "nobody committed" apart from "limit is 0",
// which print differently even though both have no ranked entries.
type Leaderboard struct {
	Since   string             `json:"since"`
	Limit   int                `json:"limit"`
	Total   int                `json:"total_contributors"`
	Entries []ContributorCount `json:"contributors"`
}

// IsEmpty reports whether no contributors matched the window at all.
func (lb *Leaderboard) IsEmpty() bool {
	return lb.Total == 0
}
