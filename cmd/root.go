package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/conneroisu/playground/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playground",
	Short: "A harness for small Go runtime lessons",
	Long: `Playground registers a catalogue of small lessons, each demonstrating one
Go language or runtime behavior, and runs them on demand with timing banners.
A lesson that fails or panics is reported and the next one still runs.

Quick Start:
  playground                      Run everything, then prompt for names
  playground list                 List all lessons
  playground run FalseSharing     Run one lesson by name
  playground run --id 3 --id 5    Run lessons by id

Command Aliases (for faster typing):
  interactive (menu, m), list (l), run (r)`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .playground.yml, can also use PLAYGROUND_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "warn", "harness log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	AddFlagValidation(rootCmd.PersistentFlags(), "log-level", func(level string) error {
		return ValidateChoice(level, []string{"debug", "info", "warn", "warning", "error"})
	})
}

// initConfig points Viper at the configuration file and enables
// PLAYGROUND_ prefixed environment overrides. A missing file is not an
// error; defaults apply.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PLAYGROUND_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".playground")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
