package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bankiru/PHP-CS-Fixer/internal/trace"
)

// traceConfig builds the tracer configuration from the persistent --trace*
// flags. A bare --trace without --trace-level means phase level.
func traceConfig(cmd *cobra.Command) (trace.Config, error) {
	flags := cmd.Root().PersistentFlags()
	var (
		cfg      trace.Config
		levelStr string
		modeStr  string
		err      error
	)
	if cfg.OutputPath, err = flags.GetString("trace"); err != nil {
		return cfg, err
	}
	if levelStr, err = flags.GetString("trace-level"); err != nil {
		return cfg, err
	}
	if modeStr, err = flags.GetString("trace-mode"); err != nil {
		return cfg, err
	}
	if cfg.RingSize, err = flags.GetInt("trace-ring-size"); err != nil {
		return cfg, err
	}
	if cfg.Heartbeat, err = flags.GetDuration("trace-heartbeat"); err != nil {
		return cfg, err
	}

	if cfg.Level, err = trace.ParseLevel(levelStr); err != nil {
		return cfg, err
	}
	if cfg.Level == trace.LevelOff && cfg.OutputPath != "" && !flags.Changed("trace-level") {
		cfg.Level = trace.LevelPhase
	}
	if cfg.Mode, err = trace.ParseMode(modeStr); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupTracing attaches a tracer to the command context. The cleanup stops
// the heartbeat, dumps the ring in ring mode and closes the tracer.
func setupTracing(cmd *cobra.Command) (func(), error) {
	cfg, err := traceConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("trace flags: %w", err)
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	if !trace.Enabled(tracer) {
		return func() {}, nil
	}

	stopHeartbeat := trace.StartHeartbeat(ctx, tracer, cfg.Heartbeat)
	stderr := cmd.ErrOrStderr()
	return func() {
		stopHeartbeat()
		// в режиме ring события по ходу работы никуда не пишутся
		if cfg.Mode == trace.ModeRing {
			if ring := trace.RingOf(tracer); ring != nil {
				warnTrace(stderr, "dump", ring.Dump(stderr, trace.FormatText))
			}
		}
		warnTrace(stderr, "flush", tracer.Flush())
		warnTrace(stderr, "close", tracer.Close())
	}, nil
}

func warnTrace(w io.Writer, what string, err error) {
	if err != nil {
		fmt.Fprintf(w, "trace: %s error: %v\n", what, err)
	}
}
