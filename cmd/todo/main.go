// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/config"
	"github.com/jacksmith/todo/internal/order"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a task list for the terminal",
	Long: `todo keeps a list of tasks for the current session. Add, edit,
complete and delete tasks, and sort the list by creation, status or name.

Run without a subcommand to open the full-screen interface, or use
"todo shell" for a line-oriented prompt that also reads scripts from stdin.

Settings are read from .todo.yaml in the current or home directory and
can be overridden with TODO_* environment variables or flags.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var configPath string

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("todo version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default .todo.yaml in the current or home directory)")
	flags.String("sort", config.DefaultSort, "initial sort order: id, status or alpha")
	flags.String("color", config.DefaultColor, "color output: auto, always or never")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file")

	registerFlagValues("sort", order.Keys())
	registerFlagValues("color", []string{"auto", "always", "never"})
	registerFlagValues("log-level", []string{"debug", "info", "warn", "error"})
}
