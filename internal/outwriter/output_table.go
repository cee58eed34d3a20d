package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/shoutout/internal/contract"
	"github.com/huangsam/shoutout/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeLeaderboardTable renders the leaderboard as a human-readable table.
// The empty-result message matches the text format so both modes are
// script-friendly on the no-contributors path.
func writeLeaderboardTable(w io.Writer, lb *schema.Leaderboard, cfg *contract.Config) error {
	if lb.IsEmpty() {
		_, err := fmt.Fprintf(w, "No contributors found since %s.\n", lb.Since)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Commits", "Contributor"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxIdentityWidth := getMaxIdentityWidth(cfg)
	var data [][]string
	for i, entry := range lb.Entries {
		data = append(data, []string{
			contract.FormatRank(i+1, cfg.UseColors),
			strconv.Itoa(entry.Commits),
			contract.TruncateIdentity(entry.Identity, maxIdentityWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d of %d contributors since %s (limit %d)\n",
		len(lb.Entries), lb.Total, lb.Since, lb.Limit)
	return err
}
