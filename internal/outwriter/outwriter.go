// Package outwriter renders leaderboards in every supported output format.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/shoutout/internal/contract"
	"github.com/huangsam/shoutout/internal/parquet"
	"github.com/huangsam/shoutout/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteLeaderboard prints the leaderboard using the configured output format.
func (ow *OutWriter) WriteLeaderboard(lb *schema.Leaderboard, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardTable(w, lb, cfg)
		}, "Wrote table")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardCSV(w, lb)
		}, "Wrote CSV")
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardJSON(w, lb)
		}, "Wrote JSON")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return parquet.WriteLeaderboardParquet(lb, cfg.OutputFile)
	default:
		// Default to the plain text report.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeaderboardText(w, lb)
		}, "Wrote report")
	}
}

// writeWithFile opens the requested output file (stdout when empty), runs
// the writer, and confirms on stderr when a file was written.
func writeWithFile(filePath string, write func(io.Writer) error, verb string) error {
	file, err := contract.SelectOutputFile(filePath)
	if err != nil {
		return fmt.Errorf("cannot open output file %s: %w", filePath, err)
	}
	if err := write(file); err != nil {
		if file != os.Stdout {
			_ = file.Close()
		}
		return err
	}
	if file != os.Stdout {
		if err := file.Close(); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "%s to %s\n", verb, filePath)
	}
	return nil
}

// getMaxIdentityWidth calculates the maximum width for identity strings in
// table output based on terminal width and table decoration overhead.
func getMaxIdentityWidth(cfg *contract.Config) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the Rank and Commits columns plus borders/padding.
	available := termWidth - 24
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
