package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/adanyl0v/go-todo-console/internal/config"
)

// MustRunConsole runs an interactive session on stdin/stdout until the
// user quits, input ends, or SIGINT/SIGTERM arrives.
func MustRunConsole() {
	cfg := config.Global().Console

	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := consoleOptions(
		cfg,
		term.IsTerminal(int(os.Stdin.Fd())),
		term.IsTerminal(int(os.Stdout.Fd())),
	)

	console := NewConsole(globalLogger, os.Stdin, os.Stdout, opts)
	err := console.Run(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("console session failed")
		panic(err)
	}
}

// consoleOptions resolves the console config against whether stdin and
// stdout are terminals.
func consoleOptions(cfg config.ConsoleConfig, stdinTerminal, stdoutTerminal bool) ConsoleOptions {
	// Piped input has nobody to read the menu.
	opts := ConsoleOptions{
		Prompt:   cfg.Prompt,
		ShowMenu: cfg.ShowMenu && stdinTerminal,
	}

	switch cfg.Color {
	case config.ColorAlways:
		opts.Color = true
		opts.ForceColor = true
	case config.ColorAuto:
		opts.Color = stdoutTerminal
	}
	return opts
}
