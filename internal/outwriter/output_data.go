package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/huangsam/shoutout/schema"
)

// writeLeaderboardCSV writes the leaderboard in CSV format.
func writeLeaderboardCSV(w io.Writer, lb *schema.Leaderboard) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"rank", "commits", "identity"}); err != nil {
		return err
	}
	for i, entry := range lb.Entries {
		rec := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(entry.Commits),
			entry.Identity,
		}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// writeLeaderboardJSON writes the leaderboard in JSON format, adding a
// 1-based rank to each entry.
func writeLeaderboardJSON(w io.Writer, lb *schema.Leaderboard) error {
	type jsonEntry struct {
		Rank int `json:"rank"`
		schema.ContributorCount
	}

	output := struct {
		Since        string      `json:"since"`
		Limit        int         `json:"limit"`
		Total        int         `json:"total_contributors"`
		Contributors []jsonEntry `json:"contributors"`
	}{
		Since:        lb.Since,
		Limit:        lb.Limit,
		Total:        lb.Total,
		Contributors: make([]jsonEntry, len(lb.Entries)),
	}
	for i, entry := range lb.Entries {
		output.Contributors[i] = jsonEntry{Rank: i + 1, ContributorCount: entry}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
