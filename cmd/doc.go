// Package cmd provides the command-line interface for playground.
//
// This package implements the CLI using the Cobra framework. Every command
// builds the same session: configuration from Viper, a slog-backed harness
// logger on stderr, and an organizer holding the enabled lessons, writing
// lesson output and timing banners to stdout.
//
// # Available Commands
//
//   - interactive (default): listing, optional run-all, then a prompt
//   - list: print the lesson listing as a table, JSON or YAML
//   - run: dispatch lessons by name or id without a prompt
//   - version: build information
//
// # Command Examples
//
//	// Run everything, then prompt
//	playground
//
//	// List lessons as YAML
//	playground list -o yaml
//
//	// Run two lessons and print a summary table
//	playground run FalseSharing AsyncConcurrent --summary
//
// # Configuration
//
// Settings are resolved with the following precedence:
//
//  1. Command-line flags (--config, --log-level)
//  2. PLAYGROUND_CONFIG_FILE environment variable for the file path
//  3. Individual environment variables (PLAYGROUND_LOG_LEVEL,
//     PLAYGROUND_RUN_ON_START, PLAYGROUND_LESSONS_DISABLED)
//  4. Configuration file (.playground.yml)
//
// In interactive mode the configuration file is watched and the log level
// is reapplied when it changes.
package cmd
