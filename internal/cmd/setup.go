package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/orgchart/internal/config"
	"github.com/Iron-Ham/orgchart/internal/errors"
	"github.com/Iron-Ham/orgchart/internal/event"
	"github.com/Iron-Ham/orgchart/internal/logging"
	"github.com/Iron-Ham/orgchart/internal/org"
	"github.com/Iron-Ham/orgchart/internal/render"
	"github.com/Iron-Ham/orgchart/internal/roster"
)

// session bundles what a command needs to build and print an org.
type session struct {
	cfg     *config.Config
	logger  *logging.Logger
	bus     *event.Bus
	printer *render.Printer
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger = logging.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	}

	bus := event.NewBus()
	eventLog := logger.WithComponent("events")
	bus.SubscribeAll(func(e event.Event) {
		eventLog.Info("org event", "topic", e.Topic())
	})
	bus.OnPanic(func(topic string, recovered any, stack []byte) {
		eventLog.Error("event handler panicked",
			"topic", topic,
			"panic", fmt.Sprint(recovered),
			"stack", string(stack),
		)
	})

	styles := render.NewStyles(cmd.OutOrStdout(), cfg.Display.Color)
	return &session{
		cfg:     cfg,
		logger:  logger,
		bus:     bus,
		printer: render.NewPrinter(styles, cfg.Display.Width),
	}, nil
}

// build assembles r into an org using the configured policy.
func (s *session) build(r *roster.Roster) (*roster.Assembly, error) {
	policy, err := s.cfg.Org.Policy()
	if err != nil {
		return nil, errors.Wrap(err, "invalid org policy")
	}
	return roster.Build(r,
		org.WithPolicy(policy),
		org.WithLogger(s.logger),
		org.WithBus(s.bus),
	)
}

// load reads a roster file and assembles it. An empty path uses the demo
// roster.
func (s *session) load(path string) (*roster.Assembly, error) {
	r := roster.Demo()
	if path != "" {
		var err error
		if r, err = roster.Load(appFs, path); err != nil {
			return nil, err
		}
	}
	return s.build(r)
}

func (s *session) printTeams(cmd *cobra.Command, a *roster.Assembly) {
	out := cmd.OutOrStdout()
	for _, tl := range a.TechnicalLeads {
		fmt.Fprintln(out, s.printer.TeamStatus(tl.Employee, tl.TeamStatus()))
	}
	for _, bl := range a.BusinessLeads {
		fmt.Fprintln(out, s.printer.TeamStatus(bl.Employee, bl.TeamStatus()))
	}
}
