package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/conneroisu/playground/internal/organizer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all registered lessons",
	Long: `List every registered lesson with its id, in id order.

Examples:
  playground list                 # List all lessons in table format
  playground list -o json         # Output as JSON
  playground list -o yaml         # Output as YAML`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFlags *StandardFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "output")
}

func runList(cmd *cobra.Command, args []string) error {
	if err := listFlags.ValidateFlags(args); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	s, err := newSession(viper.GetViper(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	details := s.org.Details()
	out := cmd.OutOrStdout()

	switch strings.ToLower(listFlags.OutputFormat) {
	case "json":
		return outputListJSON(out, details)
	case "yaml":
		return outputListYAML(out, details)
	default:
		return outputListTable(out, details)
	}
}

func outputListJSON(w io.Writer, details []organizer.Detail) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(details)
}

func outputListYAML(w io.Writer, details []organizer.Detail) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(details)
}

func outputListTable(w io.Writer, details []organizer.Detail) error {
	if len(details) == 0 {
		fmt.Fprintln(w, "No lessons registered.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, d := range details {
		fmt.Fprintf(tw, "%02d\t%s\n", d.ID, d.Name)
	}
	return tw.Flush()
}
