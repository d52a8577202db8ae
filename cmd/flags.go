package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Output flags
	OutputFormat string `flag:"output,o" desc:"Output format (table|json|yaml)" default:"table"`

	// Dispatch flags
	IDs         []int `flag:"id" desc:"Lesson id to run (repeatable)" default:""`
	All         bool  `flag:"all,a" desc:"Run every lesson" default:"false"`
	FailOnError bool  `flag:"fail-on-error" desc:"Exit non-zero when a lesson fails" default:"false"`
	Summary     bool  `flag:"summary,s" desc:"Print a result table after the run" default:"false"`
}

// outputFormats are the formats accepted by --output.
var outputFormats = []string{"table", "json", "yaml"}

// AddStandardFlags adds standard flags to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "output":
			addOutputFlags(cmd, flags)
		case "dispatch":
			addDispatchFlags(cmd, flags)
		}
	}

	return flags
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "table", "Output format (table|json|yaml)")
	AddFlagValidation(cmd.Flags(), "output", func(format string) error {
		return ValidateChoice(strings.ToLower(format), outputFormats)
	})
}

func addDispatchFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().IntSliceVar(&flags.IDs, "id", nil, "Lesson id to run (repeatable)")
	cmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Run every lesson")
	cmd.Flags().BoolVar(&flags.FailOnError, "fail-on-error", false, "Exit non-zero when a lesson fails")
	cmd.Flags().BoolVarP(&flags.Summary, "summary", "s", false, "Print a result table after the run")
}

// ValidateFlags validates flag combinations and values
func (f *StandardFlags) ValidateFlags(args []string) error {
	if f.OutputFormat != "" {
		if err := ValidateChoice(strings.ToLower(f.OutputFormat), outputFormats); err != nil {
			return err
		}
	}

	if f.All && (len(args) > 0 || len(f.IDs) > 0) {
		return fmt.Errorf("cannot combine --all with lesson names or --id")
	}

	for _, id := range f.IDs {
		if id < 0 {
			return fmt.Errorf("lesson id must not be negative, got %d", id)
		}
	}

	return nil
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(fs *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := fs.Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidateChoice checks value against allowed, suggesting the closest
// allowed value when one shares a prefix.
func ValidateChoice(value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}

	for _, candidate := range allowed {
		if value != "" && (strings.HasPrefix(candidate, value) || strings.HasPrefix(value, candidate)) {
			return fmt.Errorf("invalid value %q, did you mean %q? (must be one of: %s)",
				value, candidate, strings.Join(allowed, ", "))
		}
	}

	return fmt.Errorf("invalid value %q, must be one of: %s", value, strings.Join(allowed, ", "))
}
