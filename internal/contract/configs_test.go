package contract

import (
	"errors"
	"testing"

	"github.com/huangsam/shoutout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawInput returns a raw input with every field at its shipped default.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Since:  DefaultSince,
		Limit:  DefaultLimit,
		Repo:   DefaultRepo,
		Output: "text",
		Color:  "yes",
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int
		expectErr bool
	}{
		{"zero is valid", "0", 0, false},
		{"default", "20", 20, false},
		{"large value", "1000", 1000, false},
		{"leading zeros accepted", "007", 7, false},
		{"alphabetic", "abc", 0, true},
		{"negative", "-1", 0, true},
		{"decimal", "1.5", 0, true},
		{"plus sign", "+3", 0, true},
		{"internal space", "1 0", 0, true},
		{"surrounding space", " 10 ", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLimit(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidLimit)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validRawInput())
	require.NoError(t, err)

	assert.Equal(t, "30 days ago", cfg.Since)
	assert.Equal(t, 20, cfg.Limit)
	assert.Equal(t, ".", cfg.RepoPath)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
}

// TestProcessAndValidatePassthrough ensures since and repo reach the config
// verbatim, however odd they look. Git owns their meaning.
func TestProcessAndValidatePassthrough(t *testing.T) {
	input := validRawInput()
	input.Since = "  last tuesday "
	input.Repo = "../some repo/with spaces"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "  last tuesday ", cfg.Since)
	assert.Equal(t, "../some repo/with spaces", cfg.RepoPath)
}

func TestProcessAndValidateInvalidLimit(t *testing.T) {
	input := validRawInput()
	input.Limit = "abc"

	cfg := &Config{}
	err := ProcessAndValidate(cfg, input)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestProcessAndValidateOutputModes(t *testing.T) {
	for _, mode := range []string{"text", "table", "csv", "json", "parquet", "TEXT"} {
		input := validRawInput()
		input.Output = mode
		cfg := &Config{}
		assert.NoError(t, ProcessAndValidate(cfg, input), "mode %q should be accepted", mode)
	}

	input := validRawInput()
	input.Output = "yaml"
	cfg := &Config{}
	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidateColorAndWidth(t *testing.T) {
	input := validRawInput()
	input.Color = "no"
	input.Width = 120

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.False(t, cfg.UseColors)
	assert.Equal(t, 120, cfg.Width)

	input = validRawInput()
	input.Color = "maybe"
	assert.Error(t, ProcessAndValidate(&Config{}, input))

	input = validRawInput()
	input.Width = -1
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestUsageErrorUnwrap(t *testing.T) {
	inner := errors.New("unknown flag: --bogus")
	err := &UsageError{Err: inner}

	assert.Equal(t, "unknown flag: --bogus", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Since: "1 week ago", Limit: 5, RepoPath: "/r"}
	clone := cfg.Clone()
	clone.Limit = 50

	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, "1 week ago", clone.Since)
}

// FuzzParseLimit makes sure arbitrary input either parses to a non-negative
// integer or fails with the sentinel error, and never panics.
func FuzzParseLimit(f *testing.F) {
	seeds := []string{"0", "20", "007", "abc", "-1", "1.5", "", " 10 ", "99999999999999999999"}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		limit, err := ParseLimit(raw)
		if err != nil {
			if !errors.Is(err, ErrInvalidLimit) {
				t.Errorf("unexpected error type for %q: %v", raw, err)
			}
			return
		}
		if limit < 0 {
			t.Errorf("parsed limit is negative for %q: %d", raw, limit)
		}
	})
}
