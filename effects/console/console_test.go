package console_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/console"
	"github.com/on-the-ground/composable_go/effects/deferred"
	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConsole(t *testing.T, stdout, stderr *bytes.Buffer) context.Context {
	t.Helper()
	ctx, end := console.WithEffectHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(4, 2),
		stdout,
		stderr,
	)
	t.Cleanup(func() { end() })
	return ctx
}

func TestConsole_WritesOnlyWhenRun(t *testing.T) {
	var out, errOut bytes.Buffer
	ctx := withConsole(t, &out, &errOut)

	pgm := deferred.Then(console.PutStrLn(ctx, "hallo"), console.Write(ctx, "welt"))
	assert.Empty(t, out.String(), "building must not write")

	_, err := pgm.Run()
	require.NoError(t, err)
	assert.Equal(t, "hallo\nwelt", out.String())

	_, err = pgm.Run()
	require.NoError(t, err)
	assert.Equal(t, "hallo\nwelthallo\nwelt", out.String())
	assert.Empty(t, errOut.String())
}

func TestConsole_StreamsAreSeparate(t *testing.T) {
	var out, errOut bytes.Buffer
	ctx := withConsole(t, &out, &errOut)

	_, err := deferred.Sequence([]deferred.Io[effects.Unit]{
		console.Write(ctx, "a"),
		console.WriteErr(ctx, "x"),
		console.Write(ctx, "b"),
		console.WriteErr(ctx, "y"),
	}).Run()
	require.NoError(t, err)
	assert.Equal(t, "ab", out.String())
	assert.Equal(t, "xy", errOut.String())
}

func TestConsole_PutStrLnFormatsValues(t *testing.T) {
	var out, errOut bytes.Buffer
	ctx := withConsole(t, &out, &errOut)

	_, err := deferred.Traverse([]any{1, "two", 3.5}, func(v any) deferred.Io[effects.Unit] {
		return console.PutStrLn(ctx, v)
	}).Run()
	require.NoError(t, err)
	assert.Equal(t, "1\ntwo\n3.5\n", out.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestConsole_WriteErrorSurfacesOnRun(t *testing.T) {
	diskFull := errors.New("disk full")
	ctx, end := console.WithEffectHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(1, 1),
		failingWriter{err: diskFull},
		nil,
	)
	defer end()

	_, err := console.Write(ctx, "lost").Run()
	assert.ErrorIs(t, err, diskFull)

	_, err = console.WriteErr(ctx, "nowhere").Run()
	assert.Error(t, err)
}

func TestConsole_ClosedSink(t *testing.T) {
	var out bytes.Buffer
	ctx, end := console.WithEffectHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(1, 1),
		&out,
		&out,
	)
	write := console.Write(ctx, "late")
	end()

	_, err := write.Run()
	assert.ErrorIs(t, err, console.ErrClosedSink)
	assert.Empty(t, out.String())
}

func TestConsole_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	ctx, end := console.WithEffectHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(1, 1),
		&out,
		&out,
	)
	defer end()

	cctx, cancel := context.WithCancel(ctx)
	cancel()

	_, err := console.Write(cctx, "never").Run()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsole_NoHandlerPanicsOnRun(t *testing.T) {
	write := console.Write(context.Background(), "x")
	assert.Panics(t, func() { _, _ = write.Run() })
}
