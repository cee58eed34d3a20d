package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/shoutout/schema"
)

// writeLeaderboardText writes the plain text report.
//
// The layout is a stable contract consumed by scripts:
//
//	No contributors found since <since>.
//
// when nothing matched the window, otherwise a header followed by one
// "<count> <identity>" line per ranked contributor. Contributors existing
// while the limit is 0 yields the header with no lines beneath it.
func writeLeaderboardText(w io.Writer, lb *schema.Leaderboard) error {
	if lb.IsEmpty() {
		_, err := fmt.Fprintf(w, "No contributors found since %s.\n", lb.Since)
		return err
	}

	if _, err := fmt.Fprintf(w, "Top contributors since %s (limit %d):\n", lb.Since, lb.Limit); err != nil {
		return err
	}
	for _, entry := range lb.Entries {
		if _, err := fmt.Fprintf(w, "%d %s\n", entry.Commits, entry.Identity); err != nil {
			return err
		}
	}
	return nil
}
