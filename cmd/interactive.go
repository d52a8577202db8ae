package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/playground/internal/config"
	"github.com/conneroisu/playground/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// interactiveCmd runs the prompt loop. It is also the root command's
// default action.
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"menu", "m"},
	Short:   "Interactive lesson prompt",
	Long: `Print the lesson listing, optionally run every lesson once, then read
commands from standard input until "q" or end of input:

  q, quit     exit
  ?, menu     print the listing again
  r, all      run every lesson
  <name>      run the first lesson with that name`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

const promptHelp = `

Enter one of the following to continue:
to exit the program: "q" "quit"
for the menu type "?" or "menu"
to run every lesson: "r" or "all"
to run one lesson, type the name shown after "name: "`

type promptCommand int

const (
	promptQuit promptCommand = iota
	promptMenu
	promptRunAll
	promptRunName
)

func parsePromptLine(line string) promptCommand {
	switch line {
	case "q", "quit":
		return promptQuit
	case "?", "menu":
		return promptMenu
	case "r", "all":
		return promptRunAll
	default:
		return promptRunName
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := newSession(viper.GetViper(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if config.Watch(viper.GetViper(), func(cfg *config.Config, err error) {
		if err != nil {
			s.logger.Warn(ctx, err, "Ignoring invalid configuration change")
			return
		}
		level, _ := logging.ParseLevel(cfg.Log.Level)
		s.logger.SetLevel(level)
		s.logger.Info(ctx, "Configuration reloaded", "log_level", level.String())
	}) {
		s.logger.Debug(ctx, "Watching configuration file", "path", viper.ConfigFileUsed())
	}

	return s.prompt(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

// prompt runs the read-dispatch loop until a quit command or end of input.
func (s *session) prompt(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, cases.Title(language.English).String("go runtime playground"))

	if s.cfg.Run.ShowMenu {
		s.org.WriteDetails(out)
	}
	if s.cfg.Run.OnStart {
		if err := s.summarize(out, s.org.RunAll(ctx), false); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, promptHelp)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch parsePromptLine(line) {
		case promptQuit:
			return nil
		case promptMenu:
			s.org.WriteDetails(out)
		case promptRunAll:
			if err := s.summarize(out, s.org.RunAll(ctx), false); err != nil {
				return err
			}
		case promptRunName:
			if line == "" {
				break
			}
			report := s.org.RunByNames(ctx, line)
			if len(report) == 0 {
				fmt.Fprintf(out, "no lesson named %q\n", line)
			}
			if err := s.summarize(out, report, false); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, promptHelp)
	}

	return scanner.Err()
}
