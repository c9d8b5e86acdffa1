// Package console is a host side-channel for text output.
//
// Output is described as deferred.Io values and written only when they run.
// The host installs the handler with WithEffectHandler and supplies the
// writers; the package never touches os.Stdout on its own.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/deferred"
	"github.com/on-the-ground/composable_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
)

// ErrClosedSink is returned by a run that reaches a closed console handler.
var ErrClosedSink = errors.New("console sink is closed")

// Stream names an output stream.
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// Payload is one write request.
type Payload struct {
	Stream Stream
	Text   string
}

// PartitionKey keeps writes to the same stream in order.
func (p Payload) PartitionKey() string {
	return string(p.Stream)
}

// WithEffectHandler registers the console handler writing to stdout and
// stderr. The returned function closes it.
func WithEffectHandler(
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	stdout, stderr io.Writer,
) (context.Context, func() context.Context) {
	sinks := map[Stream]io.Writer{
		Stdout: stdout,
		Stderr: stderr,
	}
	return effects.WithResumablePartitionableEffectHandler(
		ctx,
		config,
		effectmodel.EffectConsole,
		func(_ context.Context, p Payload) (effects.Unit, error) {
			w, ok := sinks[p.Stream]
			if !ok || w == nil {
				return effects.Unit{}, fmt.Errorf("console: no writer for stream %q", p.Stream)
			}
			_, err := io.WriteString(w, p.Text)
			return effects.Unit{}, err
		},
	)
}

// Write describes writing text to stdout.
func Write(ctx context.Context, text string) deferred.Io[effects.Unit] {
	return perform(ctx, Payload{Stream: Stdout, Text: text})
}

// WriteErr describes writing text to stderr.
func WriteErr(ctx context.Context, text string) deferred.Io[effects.Unit] {
	return perform(ctx, Payload{Stream: Stderr, Text: text})
}

// PutStrLn describes writing v and a newline to stdout.
func PutStrLn(ctx context.Context, v any) deferred.Io[effects.Unit] {
	return Write(ctx, fmt.Sprintln(v))
}

func perform(ctx context.Context, p Payload) deferred.Io[effects.Unit] {
	return deferred.Apply(func() (effects.Unit, error) {
		u, err := effects.AwaitResumableEffect[Payload, effects.Unit](ctx, effectmodel.EffectConsole, p)
		if errors.Is(err, handlers.ErrClosedScope) {
			return u, fmt.Errorf("%w: %w", ErrClosedSink, err)
		}
		return u, err
	})
}
