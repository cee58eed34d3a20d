// Package cmd defines the command-line interface for shoutout.
package cmd

import (
	"os"

	"github.com/huangsam/shoutout/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("since", contract.DefaultSince, "Free-form since-date expression passed to git verbatim")
	rootCmd.PersistentFlags().StringP("limit", "l", contract.DefaultLimit, "Number of contributors to display (non-negative integer)")
	rootCmd.PersistentFlags().StringP("repo", "C", contract.DefaultRepo, "Path to the Git repository")
	rootCmd.PersistentFlags().String("output", "text", "Output format: text, table, csv, json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored ranks in table output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Usage goes to stderr with a non-zero exit so report output on stdout
	// never mixes with help text.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_, _ = os.Stderr.WriteString(cmd.UsageString())
		os.Exit(2)
	})

	// Flag parse failures (unknown flags, missing values) become usage
	// errors for the entrypoint to classify.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &contract.UsageError{Err: err}
	})
}
