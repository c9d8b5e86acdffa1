package effects

import (
	"context"

	"github.com/on-the-ground/composable_go/effects/internal/handlers"
	"github.com/on-the-ground/composable_go/effects/internal/helper"
	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
	sharedHelper "github.com/on-the-ground/composable_go/shared/helper"
	"go.uber.org/zap"
)

// EffectScopeConfig sizes a handler: queue buffer per worker and worker count.
type EffectScopeConfig = effectmodel.EffectScopeConfig

// NewEffectScopeConfig clamps non-positive values to 1.
func NewEffectScopeConfig(bufferSize, numWorkers int) EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(bufferSize, numWorkers)
}

// WithResumablePartitionableEffectHandler registers a resumable effect handler for a given effect enum.
//
// Payloads are routed by PartitionKey(), so payloads sharing a key are handled
// in the order they were performed. Host side-channels such as the console
// use one key per output stream.
//
// Usage:
//
//	ctx, end := WithResumablePartitionableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumablePartitionableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	logger, _ := zap.NewProduction()
	td := normalizeTeardown(teardown)
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	logger.Sugar().Debugf("created resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		logger.Sugar().Debugf("closed resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// PerformResumableEffect sends a payload to the resumable effect handler and waits for the result.
//
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P effectmodel.Partitionable, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) <-chan handlers.ResumableResult[R] {
	handler := sharedHelper.MustGetTypedValue[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	return handler.PerformEffect(ctx, payload)
}

// AwaitResumableEffect performs the effect and unpacks its result.
func AwaitResumableEffect[P effectmodel.Partitionable, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) (val R, err error) {
	resultCh := PerformResumableEffect[P, R](ctx, enum, payload)
	select {
	case res, ok := <-resultCh:
		if ok {
			return res.Value, res.Err
		}
	case <-ctx.Done():
	}
	err = ctx.Err()
	return
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
