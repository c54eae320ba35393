package runner_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/detent"
	"github.com/veldt-labs/detent/pkg/runner"
)

func runScript(t *testing.T, script string) (string, *detent.Machine) {
	t.Helper()

	m := detent.New()
	var out strings.Builder
	r := &runner.Runner{
		Input:    strings.NewReader(script),
		Output:   &out,
		Headless: true,
	}

	require.NoError(t, r.Run(context.Background(), m))
	return out.String(), m
}

func TestRunner_TransitionsAndRejections(t *testing.T) {
	out, m := runScript(t, "store\nready\nready\nstore\n")

	assert.Contains(t, out, "Transition failed! Current state is stored.")
	assert.Contains(t, out, "Transitioned to ready!")
	assert.Contains(t, out, "Transition failed! Current state is ready.")
	assert.Contains(t, out, "Transitioned to stored!")

	assert.Equal(t, "stored", m.StateName())
	assert.Equal(t, uint64(1), m.ReadyCount())
}

func TestRunner_UnknownOperation(t *testing.T) {
	out, m := runScript(t, "launch\n\nready\n")

	assert.Contains(t, out, "unknown operation, try again")
	assert.Equal(t, "ready", m.StateName())
}

func TestRunner_EOFEndsLoop(t *testing.T) {
	out, _ := runScript(t, "")
	assert.Empty(t, out)
}

func TestRunner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &runner.Runner{
		Input:    strings.NewReader("ready\n"),
		Output:   &strings.Builder{},
		Headless: true,
	}
	err := r.Run(ctx, detent.New())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_PromptShownWhenInteractive(t *testing.T) {
	m := detent.New()
	var out strings.Builder
	r := &runner.Runner{
		Input:  strings.NewReader("ready\n"),
		Output: &out,
	}
	require.NoError(t, r.Run(context.Background(), m))
	assert.Contains(t, out.String(), "Please enter an operation: ready, store")
}
