package handlers

import (
	"github.com/google/uuid"
	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
)

// effectScope is owned by the goroutine that registered it.
// Close must not race with itself.
type effectScope[M effectmodel.Partitionable] struct {
	EffectId string
	queue    partitionedQueue[M]
	done     <-chan struct{}
	closeFn  func()
	closed   bool
}

// Close stops the workers and runs the teardown once.
func (es *effectScope[M]) Close() {
	if !es.closed {
		es.closeFn()
		es.closed = true
	}
}

// Closed reports whether Close has been called.
func (es *effectScope[M]) Closed() bool {
	return es.closed
}

func newEffectScope[M effectmodel.Partitionable](
	queue partitionedQueue[M],
	done <-chan struct{},
	teardown func(),
) *effectScope[M] {
	return &effectScope[M]{
		EffectId: uuid.New().String(),
		queue:    queue,
		done:     done,
		closeFn:  teardown,
		closed:   false,
	}
}
