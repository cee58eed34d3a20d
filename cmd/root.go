package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/shoutout/core"
	"github.com/huangsam/shoutout/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations. The log query is never
// cancelled by the tool itself.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// gitClient is the log query client used by all commands.
var gitClient contract.GitClient = contract.NewLocalGitClient()

// rootCmd runs the contributor-ranking pipeline directly; subcommands cover
// everything else.
var rootCmd = &cobra.Command{
	Use:                "shoutout",
	Short:              "Report the most active contributors of a Git repository.",
	Long:               `Shoutout ranks the contributors of a Git repository by commit count within a recent time window.`,
	Version:            version,
	Args:               noPositionalArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteLeaderboard(rootCtx, cfg, gitClient)
	},
}

// noPositionalArgs rejects stray arguments as usage errors so the
// entrypoint prints usage instead of a bare error line.
func noPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &contract.UsageError{Err: fmt.Errorf("unexpected argument: %s", args[0])}
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".shoutout") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SHOUTOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("since", contract.DefaultSince)
	viper.SetDefault("limit", contract.DefaultLimit)
	viper.SetDefault("repo", contract.DefaultRepo)
	viper.SetDefault("output", "text")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation. Validation happens
// before any repository access, so a bad limit never reaches git.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation. This populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// UsageString exposes the root usage text so the entrypoint can print it on
// usage failures.
func UsageString() string {
	return rootCmd.UsageString()
}
