// Package parquet exports leaderboard data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/shoutout/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributorRow is one ranked contributor in the Parquet export.
type ContributorRow struct {
	// Rank is the 1-based position in the leaderboard
	Rank int32 `parquet:"rank,snappy"`

	// Identity is the author identity as "Display Name <email>"
	Identity string `parquet:"identity,snappy"`

	// Commits is the number of commits authored in the window
	Commits int64 `parquet:"commits,snappy"`

	// Since is the since-date expression the window was filtered by
	Since string `parquet:"since,snappy"`

	// GeneratedAt is when the report was produced
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// WriteLeaderboardParquet writes the ranked contributors to a Parquet file.
func WriteLeaderboardParquet(lb *schema.Leaderboard, outputPath string) error {
	rows := make([]ContributorRow, len(lb.Entries))
	now := time.Now()
	for i, entry := range lb.Entries {
		rows[i] = ContributorRow{
			Rank:        int32(i + 1),
			Identity:    entry.Identity,
			Commits:     int64(entry.Commits),
			Since:       lb.Since,
			GeneratedAt: now,
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ContributorRow struct tags.
	writer := parquet.NewGenericWriter[ContributorRow](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}
