package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/pulse-drift/internal/config"
	"github.com/iburimskiy/pulse-drift/internal/export"
	"github.com/iburimskiy/pulse-drift/internal/game"
	"github.com/iburimskiy/pulse-drift/internal/term"
)

func main() {
	flag.Parse()

	opts := options()
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	level, _ := config.ParseLevel(opts.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	gg.SetLogger(log)

	if err := run(opts, log); err != nil {
		log.Error("pulse-drift failed", "mode", opts.Mode, "err", err)
		os.Exit(1)
	}
}

func run(opts config.Options, log *slog.Logger) error {
	switch opts.Mode {
	case config.ModeWindow:
		return game.Run(opts, log)

	case config.ModeTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return term.Run(ctx, opts, log)

	case config.ModeExport:
		_, err := export.Render(export.Options{
			Output:    opts.Output,
			Width:     opts.Width,
			Height:    opts.Height,
			Density:   opts.Density,
			TimeMS:    opts.TimeMS,
			Frames:    opts.Frames,
			FrameStep: opts.FrameStep,
		}, log)
		return err
	}
	return fmt.Errorf("%w: mode %q", config.ErrInvalidOption, opts.Mode)
}
