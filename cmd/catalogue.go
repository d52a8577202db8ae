package cmd

import (
	"fmt"
	"io"

	"github.com/conneroisu/playground/internal/config"
	"github.com/conneroisu/playground/internal/lessons"
	"github.com/conneroisu/playground/internal/logging"
	"github.com/conneroisu/playground/internal/organizer"
	"github.com/spf13/viper"
)

// session is the wiring shared by every command: loaded configuration, the
// harness logger and an organizer holding the filtered lesson catalogue.
type session struct {
	cfg    *config.Config
	logger *logging.PlaygroundLogger
	org    *organizer.Organizer
}

// newSession loads configuration from v and registers the enabled lessons
// on an organizer writing to out.
func newSession(v *viper.Viper, out, logOut io.Writer) (*session, error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	lc := cfg.LoggerConfig()
	lc.Output = logOut
	logger := logging.NewLogger(lc)

	org := organizer.New(
		organizer.WithOutput(out),
		organizer.WithLogger(logger),
	)
	org.Builder().AddLessons(lessons.Filter(lessons.All(out), cfg.Lessons.Enabled, cfg.Lessons.Disabled)...)

	return &session{cfg: cfg, logger: logger, org: org}, nil
}

// summarize writes the report table when the run asked for it.
func (s *session) summarize(w io.Writer, report organizer.Report, force bool) error {
	if !force && !s.cfg.Run.Summary {
		return nil
	}
	fmt.Fprintln(w)
	return report.WriteSummary(w)
}
