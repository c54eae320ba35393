package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/veldt-labs/detent"
	"github.com/veldt-labs/detent/internal/logging"
	"github.com/veldt-labs/detent/pkg/domain"
)

// Runner handles the execution loop of a detent machine using provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	// Input supplies operation words, one per line.
	Input io.Reader

	// Output receives prompts and outcome reports.
	Output io.Writer

	// Headless suppresses the interactive prompt (for piped input).
	Headless bool

	// Logger is used for internal debug logging. If nil, a no-op logger
	// is used.
	Logger *slog.Logger
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner() *Runner {
	return &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: logging.NewNop(),
	}
}

// Run executes the loop until the input is exhausted or the context is
// canceled. Rejections are reported and the loop continues; they are
// expected outcomes, not errors.
func (r *Runner) Run(ctx context.Context, m *detent.Machine) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	scanner := bufio.NewScanner(r.Input)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !r.Headless {
			fmt.Fprint(r.Output, "Please enter an operation: ready, store\n> ")
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		op, err := domain.ParseOp(line)
		if err != nil {
			fmt.Fprintln(r.Output, "unknown operation, try again")
			continue
		}

		logger.Debug("applying operation", "op", string(op))

		switch err := m.Apply(op); {
		case err == nil:
			fmt.Fprintf(r.Output, "Transitioned to %s!\n", m.StateName())
		case errors.Is(err, domain.ErrRejected):
			fmt.Fprintf(r.Output, "Transition failed! Current state is %s.\n", m.StateName())
		default:
			return fmt.Errorf("apply %s: %w", op, err)
		}
	}
}
