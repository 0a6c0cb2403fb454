package cmd

import (
	"fmt"
	"os"

	"recdiag/internal/config"
	"recdiag/internal/report"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the recdiag command around a fresh default configuration
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "recdiag",
		Short: "Diagnose the format of recent meeting recordings",
		Long: `recdiag inspects the last meeting recordings, reports their sample rate,
channel count, duration and size, flags recordings that are not in the expected
format, and prints instructions for a manual playback test. It finishes by
listing the most recent snippet recordings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecdiag(cmd, cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.MeetingsDir, "dir", "d", cfg.MeetingsDir,
		"Directory holding the meeting recordings")
	rootCmd.Flags().StringVar(&cfg.SnippetsDir, "snippets-dir", cfg.SnippetsDir,
		"Directory holding snippet recordings")
	rootCmd.Flags().StringVarP(&cfg.SnippetPattern, "snippet-pattern", "p", cfg.SnippetPattern,
		"Glob pattern selecting snippets to check")
	rootCmd.Flags().IntVarP(&cfg.SnippetLimit, "snippet-limit", "n", cfg.SnippetLimit,
		"Maximum number of snippets to check")
	rootCmd.Flags().IntVarP(&cfg.ExpectedRate, "expected-rate", "r", cfg.ExpectedRate,
		"Expected sample rate in Hz")
	rootCmd.Flags().IntVarP(&cfg.ExpectedChannels, "expected-channels", "c", cfg.ExpectedChannels,
		"Expected channel count")

	return rootCmd
}

// Execute runs the root command and exits non-zero only on invalid usage.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func runRecdiag(cmd *cobra.Command, cfg *config.Config) error {
	// Snippets follow the meetings directory unless set explicitly
	if cmd.Flags().Changed("dir") && !cmd.Flags().Changed("snippets-dir") {
		cfg.SnippetsDir = config.SnippetsDirFor(cfg.MeetingsDir)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	report.Run(cmd.OutOrStdout(), cfg)
	return nil
}
