package main

import (
	"io"
	"log/slog"

	"github.com/jacksmith/todo/internal/tui"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	// tcell owns the screen, so logs only go to a configured file.
	sess, err := newSession(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer sess.close()

	app := tview.NewApplication()
	view := tui.New(app, sess.ctrl, sess.store, tui.Options{ShowCompleted: sess.cfg.ShowCompleted})
	id := sess.store.AddObserver(view)
	defer sess.store.RemoveObserver(id)

	slog.Info("starting terminal UI")
	return view.Run()
}
