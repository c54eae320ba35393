package cli

import (
	"context"
	"log/slog"

	"github.com/veldt-labs/detent"
	"github.com/veldt-labs/detent/internal/presentation/tui"
	"github.com/veldt-labs/detent/pkg/runner"
	"github.com/veldt-labs/detent/pkg/telemetry"
)

// SessionOptions controls an interactive session.
type SessionOptions struct {
	// Headless suppresses the banner and prompts (for piped input).
	Headless bool

	// Debug wires lifecycle hooks that log every enter, exit, and
	// rejection.
	Debug bool
}

// RunSession runs a fresh machine through the interactive loop until the
// input is exhausted.
func RunSession(ctx context.Context, logger *slog.Logger, opts SessionOptions) error {
	machineOpts := []detent.Option{detent.WithLogger(logger)}
	if opts.Debug {
		machineOpts = append(machineOpts, detent.WithHooks(telemetry.LogHooks(logger)))
	}
	m := detent.New(machineOpts...)

	if !opts.Headless {
		tui.PrintBanner()
	}

	r := runner.NewRunner()
	r.Headless = opts.Headless
	r.Logger = logger
	return r.Run(ctx, m)
}
