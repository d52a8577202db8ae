package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/conneroisu/playground/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for playground.

Examples:
  playground version                # Show version
  playground version --short        # Show short version only
  playground version --format json  # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	AddFlagValidation(versionCmd.Flags(), "format", func(format string) error {
		return ValidateChoice(format, []string{"text", "json"})
	})
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch versionFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(version.GetBuildInfo())
	case "text":
		if versionShort {
			_, err := fmt.Fprintln(out, version.GetShortVersion())
			return err
		}
		return outputVersionDefault(out)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}

func outputVersionDefault(w io.Writer) error {
	info := version.GetBuildInfo()

	fmt.Fprintf(w, "playground %s", info.Version)
	if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
		fmt.Fprintf(w, " (%s)", info.GitCommit[:7])
	}
	if info.Dirty {
		fmt.Fprint(w, " (dirty)")
	}
	fmt.Fprintln(w)

	if !info.BuildTime.IsZero() {
		fmt.Fprintf(w, "Built: %s\n", info.BuildTime.Format("2006-01-02 15:04:05 UTC"))
	}
	fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
	_, err := fmt.Fprintf(w, "Platform: %s\n", info.Platform)
	return err
}
