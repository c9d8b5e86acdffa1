package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog     EffectEnum = "composable_go_effect_enum_log"
	EffectConsole EffectEnum = "composable_go_effect_enum_console"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// Partitionable payloads are routed to a worker by their key.
// Payloads sharing a key are handled in submission order.
type Partitionable interface {
	PartitionKey() string
}
