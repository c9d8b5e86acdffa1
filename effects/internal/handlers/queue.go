package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
)

// partitionedQueue fans messages out to one channel per worker.
// Messages with the same partition key always land on the same worker.
type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
}

func (pq partitionedQueue[T]) getChannelOf(msg T) chan T {
	return pq.effectChs[getIndexByHash(msg, len(pq.effectChs))]
}

func newPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) partitionedQueue[T] {
	channels := make([]chan T, numWorkers)
	ready := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		ch := make(chan T, bufferSize)
		go func(ch chan T) {
			ready.Done()
			for {
				select {
				case msg := <-ch:
					if ctx.Err() != nil {
						return
					}
					handleFn(ctx, msg)
				case <-ctx.Done():
					return
				}
			}
		}(ch)
		channels[i] = ch
	}
	ready.Wait()
	return partitionedQueue[T]{effectChs: channels}
}
