package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Colors for the top table ranks.
var (
	GoldColor   = color.New(color.FgYellow, color.Bold)
	SilverColor = color.New(color.FgWhite, color.Bold)
	BronzeColor = color.New(color.FgRed)
)

// FormatRank renders a 1-based rank for table output, coloring the podium
// positions when colors are enabled.
func FormatRank(rank int, useColors bool) string {
	text := fmt.Sprintf("%d", rank)
	if !useColors {
		return text
	}
	switch rank {
	case 1:
		return GoldColor.Sprint(text)
	case 2:
		return SilverColor.Sprint(text)
	case 3:
		return BronzeColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateIdentity truncates an identity string to a maximum width with an
// ellipsis suffix, keeping the display-name side readable.
// Requires maxWidth > 3 so there is room for "..." plus content.
func TruncateIdentity(identity string, maxWidth int) string {
	runes := []rune(identity)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return identity
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
