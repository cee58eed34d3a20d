package core

import (
	"context"

	"github.com/huangsam/shoutout/internal/contract"
	"github.com/huangsam/shoutout/internal/outwriter"
	"github.com/huangsam/shoutout/schema"
)

// BuildLeaderboard runs the fetch, aggregate and rank stages and returns the
// resulting leaderboard. Errors from the log query propagate unmodified; the
// aggregation and ranking stages cannot fail.
func BuildLeaderboard(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.Leaderboard, error) {
	out, err := client.GetAuthorLog(ctx, cfg.RepoPath, cfg.Since)
	if err != nil {
		return nil, err
	}

	counts := CountAuthors(SplitAuthorLog(out))
	ranked := RankContributors(counts, cfg.Limit)

	return &schema.Leaderboard{
		Since:   cfg.Since,
		Limit:   cfg.Limit,
		Total:   len(counts),
		Entries: ranked,
	}, nil
}

// ExecuteLeaderboard runs the full pipeline and writes the report using the
// configured output format.
func ExecuteLeaderboard(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	lb, err := BuildLeaderboard(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteLeaderboard(lb, cfg)
}
