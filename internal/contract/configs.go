package contract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/huangsam/shoutout/schema"
)

// Default values for configuration.
const (
	DefaultSince = "30 days ago"
	DefaultLimit = "20"
	DefaultRepo  = "."
)

// ErrInvalidLimit is returned when --limit does not look like a non-negative
// integer. The entrypoint matches on it to print the documented message.
var ErrInvalidLimit = errors.New("--limit must be a non-negative integer")

// limitRe accepts non-negative base-10 integers only. Signs, spaces and
// decimals are all rejected before any repository access happens.
var limitRe = regexp.MustCompile(`^[0-9]+$`)

// UsageError marks argument problems that should print usage text rather
// than a plain error line.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Config holds the runtime configuration for a single run.
// This struct is the final, validated config: built once at startup and
// never mutated afterwards.
type Config struct {
	Since      string // Free-form since-date expression, passed to git verbatim
	Limit      int    // Maximum number of ranked contributors to report
	RepoPath   string // Repository path, passed to git verbatim
	Output     schema.OutputMode
	OutputFile string // Optional path to write the report to
	UseColors  bool   // Enable colored ranks in table output
	Width      int    // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct before validation.
type ConfigRawInput struct {
	Since      string `mapstructure:"since"`
	Limit      string `mapstructure:"limit"`
	Repo       string `mapstructure:"repo"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. It touches no repository state, so
// a validation failure is guaranteed to happen before any git access.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Limit Validation ---
	limit, err := ParseLimit(input.Limit)
	if err != nil {
		return err
	}
	cfg.Limit = limit

	// --- 2. Opaque passthrough fields ---
	// The since expression and repo path belong to git; no trimming, no
	// interpretation.
	cfg.Since = input.Since
	cfg.RepoPath = input.Repo
	if cfg.RepoPath == "" {
		cfg.RepoPath = DefaultRepo
	}

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, table, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 4. Presentation flags ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	return nil
}

// ParseLimit validates a raw limit string against the non-negative integer
// pattern and converts it. Zero is a valid limit.
func ParseLimit(raw string) (int, error) {
	if !limitRe.MatchString(raw) {
		return 0, ErrInvalidLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		// Digits-only strings too large for an int land here.
		return 0, ErrInvalidLimit
	}
	return limit, nil
}
