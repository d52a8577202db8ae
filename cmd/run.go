package cmd

import (
	"context"
	"fmt"

	"github.com/conneroisu/playground/internal/organizer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:     "run [names...]",
	Aliases: []string{"r"},
	Short:   "Run lessons by name or id",
	Long: `Run lessons without the interactive prompt.

Names run in the order given, each resolving to the first lesson with that
name. Ids given with --id run after the names. Unknown names and ids are
skipped. With no names and no ids every lesson runs.

A lesson that fails is reported and the next one still runs; the command
exits zero unless --fail-on-error is set.

Examples:
  playground run                          # Run every lesson
  playground run FalseSharing AsyncConcurrent
  playground run --id 0 --id 12 --summary
  playground run --all --fail-on-error`,
	RunE: runRun,
}

var runFlags *StandardFlags

func init() {
	rootCmd.AddCommand(runCmd)

	runFlags = AddStandardFlags(runCmd, "dispatch")
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := runFlags.ValidateFlags(args); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	s, err := newSession(viper.GetViper(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var report organizer.Report
	if runFlags.All || (len(args) == 0 && len(runFlags.IDs) == 0) {
		report = s.org.RunAll(ctx)
	} else {
		report = append(s.org.RunByNames(ctx, args...), s.org.RunByIDs(ctx, runFlags.IDs...)...)
	}

	if err := s.summarize(cmd.OutOrStdout(), report, runFlags.Summary); err != nil {
		return err
	}

	if runFlags.FailOnError && !report.OK() {
		return fmt.Errorf("%d of %d lessons failed", len(report.Failed()), len(report))
	}
	return nil
}
