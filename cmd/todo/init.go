package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	Long: `Write .todo.yaml in the current directory, or in the home directory
with --global.

On a terminal you are asked for each setting, starting from the current
configuration (including any flags given). Otherwise, or with --defaults,
the current configuration is written as is.

Fails if the file already exists, unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initGlobal   bool
	initForce    bool
	initDefaults bool
)

func init() {
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write to the home directory")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "do not prompt")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.Path(initGlobal)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in, isFile := cmd.InOrStdin().(*os.File)
	if !initDefaults && isFile && cli.IsTerminal(in) {
		proceed, err := config.Prompt(cfg)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
