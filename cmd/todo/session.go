package main

import (
	"io"
	"log/slog"

	"github.com/jacksmith/todo/internal/config"
	"github.com/jacksmith/todo/internal/controller"
	"github.com/jacksmith/todo/internal/store"
	"github.com/spf13/cobra"
)

// session is the core every front-end runs on: configuration, logging, the
// store and its controller.
type session struct {
	cfg      *config.Config
	store    *store.Store
	ctrl     *controller.Controller
	closeLog func() error
}

// newSession loads configuration for cmd and builds an empty store sorted by
// the configured strategy. Logs go to logOut unless a log file is configured.
func newSession(cmd *cobra.Command, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := cfg.NewLogger(logOut)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	strategy, err := cfg.SortStrategy()
	if err != nil {
		closeLog()
		return nil, err
	}

	st := store.New()
	st.SetSortStrategy(strategy)
	slog.Debug("session started", "command", cmd.Name(), "sort", strategy.Name())

	return &session{
		cfg:      cfg,
		store:    st,
		ctrl:     controller.New(st),
		closeLog: closeLog,
	}, nil
}

func (s *session) close() {
	if err := s.closeLog(); err != nil {
		slog.Warn("failed to close log file", "error", err)
	}
}
