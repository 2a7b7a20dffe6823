package main

import (
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/shell"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Manage tasks from a line-oriented prompt",
	Long: `Read commands from stdin and redraw the task list after every change.

Commands may be abbreviated to any unique prefix. Type "help" at the
prompt for the full list. Without a terminal on stdin no prompt is shown,
so scripts can be piped in:

Examples:
  todo shell
  printf 'add Buy milk\nadd Walk dog\ndone 1\n' | todo shell
  todo shell --sort status --hide-completed`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var (
	shellHideCompleted bool
	shellNoColor       bool
)

func init() {
	shellCmd.Flags().BoolVar(&shellHideCompleted, "hide-completed", false, "start with completed tasks hidden")
	shellCmd.Flags().BoolVar(&shellNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.close()

	out := cmd.OutOrStdout()
	if shellNoColor {
		cli.SetColorEnabled(false)
	} else if err := cli.ConfigureColor(sess.cfg.Color, out); err != nil {
		return err
	}

	in := cmd.InOrStdin()
	prompt := ""
	if f, ok := in.(*os.File); ok && cli.IsTerminal(f) {
		prompt = "> "
	}

	sh := shell.New(sess.ctrl, sess.store, out, shell.Options{
		ShowCompleted: sess.cfg.ShowCompleted && !shellHideCompleted,
		Width:         cli.Width(out),
		Prompt:        prompt,
	})
	id := sess.store.AddObserver(sh)
	defer sess.store.RemoveObserver(id)

	return sh.Run(cmd.Context(), in)
}
