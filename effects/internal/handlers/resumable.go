package handlers

import (
	"context"
	"errors"
	"fmt"

	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
)

var (
	ErrClosedScope  = errors.New("effect scope is closed")
	ErrHandlerPanic = errors.New("effect handler panicked")
)

// NewPartitionableResumableHandler starts config.NumWorkers workers that run
// handleFn and send its result back to the performer.
func NewPartitionableResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	config = effectmodel.NewEffectScopeConfig(config.BufferSize, config.NumWorkers)
	ctx, cancelFn := context.WithCancel(ctx)
	queue := newPartitionedQueue(
		ctx,
		config.NumWorkers,
		config.BufferSize,
		func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
			// resumeCh is buffered, this never blocks
			msg.ResumeCh <- handle(ctx, handleFn, msg.Payload)
			close(msg.ResumeCh)
		},
	)
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			queue,
			ctx.Done(),
			func() {
				cancelFn()
				teardown()
			},
		),
	}
}

type ResumableHandler[P effectmodel.Partitionable, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect hands payload to the worker owning its partition and waits
// for the worker to resume it. The returned channel holds exactly one result
// and is closed.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) <-chan ResumableResult[R] {
	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: make(chan ResumableResult[R], 1),
	}

	if err := ctx.Err(); err != nil {
		return failed[R](err)
	}
	select {
	case <-rh.done:
		return failed[R](rh.closedErr())
	default:
	}

	select {
	case <-ctx.Done():
		return failed[R](ctx.Err())
	case <-rh.done:
		return failed[R](rh.closedErr())
	case rh.queue.getChannelOf(msg) <- msg:
	}

	// the worker may have stopped with msg still queued
	select {
	case res := <-msg.ResumeCh:
		return resumed(res)
	case <-ctx.Done():
		return failed[R](ctx.Err())
	case <-rh.done:
		return failed[R](rh.closedErr())
	}
}

func (rh ResumableHandler[P, R]) closedErr() error {
	return fmt.Errorf("%w: %s", ErrClosedScope, rh.EffectId)
}

func failed[R any](err error) <-chan ResumableResult[R] {
	return resumed(ResumableResult[R]{Err: err})
}

func resumed[R any](res ResumableResult[R]) <-chan ResumableResult[R] {
	ch := make(chan ResumableResult[R], 1)
	ch <- res
	close(ch)
	return ch
}

func handle[P, R any](
	ctx context.Context,
	handleFn func(context.Context, P) (R, error),
	payload P,
) (res ResumableResult[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = ResumableResult[R]{Err: fmt.Errorf("%w: %v", ErrHandlerPanic, r)}
		}
	}()
	return ResumableResultFrom(handleFn(ctx, payload))
}

// ResumableResult represents the result of handled effects.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[effectmodel.Partitionable, any]{}

type ResumableEffectMessage[P effectmodel.Partitionable, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	return rem.Payload.PartitionKey()
}
