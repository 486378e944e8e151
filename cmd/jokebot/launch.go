package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jokebot/internal/launcher"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the Python bot inside its virtual environment",
	Long: `Checks for the virtual-environment interpreter and, when present,
runs the bot entry point with it. Without one it prints setup
instructions instead of running anything.

The check targets <venv>/bin/<interpreter> relative to the working
directory (defaults .venv/bin/python, entry point bot.py; VENV_DIR,
VENV_INTERPRETER and BOT_ENTRYPOINT override). The child inherits the
standard streams and its exit code becomes jokebot's exit code.`,
	Args: cobra.NoArgs,
	RunE: runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) error {
	envService, err := loadEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := launcher.New(launcher.Config{
		VenvDir:     envService.Get("VENV_DIR"),
		Interpreter: envService.Get("VENV_INTERPRETER"),
		EntryPoint:  envService.Get("BOT_ENTRYPOINT"),
	})

	result, err := l.Run(ctx)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		os.Exit(result.ExitCode)
	}
	return nil
}
