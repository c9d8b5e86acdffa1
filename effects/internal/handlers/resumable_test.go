package handlers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/on-the-ground/composable_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyed string

func (k keyed) PartitionKey() string { return string(k) }

func await[R any](t *testing.T, ch <-chan handlers.ResumableResult[R]) handlers.ResumableResult[R] {
	t.Helper()
	select {
	case res, ok := <-ch:
		require.True(t, ok, "result channel closed without a result")
		return res
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result")
		return handlers.ResumableResult[R]{}
	}
}

func TestResumableHandler_ReturnsHandlerResult(t *testing.T) {
	ctx := context.Background()
	handler := handlers.NewPartitionableResumableHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 2),
		func(_ context.Context, p keyed) (int, error) {
			return len(p), nil
		},
		func() {},
	)
	defer handler.Close()

	assert.NotEmpty(t, handler.EffectId)

	res := await(t, handler.PerformEffect(ctx, keyed("hello")))
	assert.NoError(t, res.Err)
	assert.Equal(t, 5, res.Value)
}

func TestResumableHandler_PropagatesHandlerError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	handler := handlers.NewPartitionableResumableHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 1),
		func(context.Context, keyed) (int, error) { return 0, boom },
		func() {},
	)
	defer handler.Close()

	res := await(t, handler.PerformEffect(ctx, keyed("k")))
	assert.ErrorIs(t, res.Err, boom)
}

func TestResumableHandler_RecoversHandlerPanic(t *testing.T) {
	ctx := context.Background()
	handler := handlers.NewPartitionableResumableHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 1),
		func(context.Context, keyed) (int, error) { panic("handler blew up") },
		func() {},
	)
	defer handler.Close()

	res := await(t, handler.PerformEffect(ctx, keyed("k")))
	assert.ErrorIs(t, res.Err, handlers.ErrHandlerPanic)
	assert.ErrorContains(t, res.Err, "handler blew up")

	// the worker survives the panic
	res = await(t, handler.PerformEffect(ctx, keyed("k")))
	assert.ErrorIs(t, res.Err, handlers.ErrHandlerPanic)
}

func TestResumableHandler_CloseRunsTeardownOnce(t *testing.T) {
	ctx := context.Background()
	teardowns := 0
	handler := handlers.NewPartitionableResumableHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 1),
		func(context.Context, keyed) (int, error) { return 1, nil },
		func() { teardowns++ },
	)

	handler.Close()
	handler.Close()
	assert.Equal(t, 1, teardowns)
	assert.True(t, handler.Closed())

	res := await(t, handler.PerformEffect(ctx, keyed("k")))
	assert.ErrorIs(t, res.Err, handlers.ErrClosedScope)
}

func TestResumableHandler_CancelledPerformer(t *testing.T) {
	handler := handlers.NewPartitionableResumableHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(1, 1),
		func(context.Context, keyed) (int, error) { return 1, nil },
		func() {},
	)
	defer handler.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := await(t, handler.PerformEffect(ctx, keyed("k")))
	assert.ErrorIs(t, res.Err, context.Canceled)
}
