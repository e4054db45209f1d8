package fftf

import (
	"fmt"
	"slices"
	"sync"
)

// Engine is a transform backend. Init allocates plan state for inst and
// stores it in inst.Internal; Calc executes inst using that state; Destroy
// releases it. New validates the configuration and buffer sizes before
// Init is called, so engines only reject combinations they do not support.
type Engine interface {
	Init(inst *Instance) error
	Calc(inst *Instance)
	Destroy(inst *Instance)

	// Malloc returns a zeroed buffer of n floats suited to the engine.
	Malloc(n int) []float32
}

var (
	registryMu sync.RWMutex
	registry   = map[Backend]Engine{}
)

// Register makes an engine available under the given backend id,
// replacing any engine previously registered there. It panics if e is nil.
func Register(b Backend, e Engine) {
	if e == nil {
		panic("fftf: Register engine is nil")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	registry[b] = e
}

// Lookup returns the engine registered for b.
func Lookup(b Backend) (Engine, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	e, ok := registry[b]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
	}

	return e, nil
}

// Backends returns the registered backend ids in ascending order.
func Backends() []Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]Backend, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// Malloc allocates a buffer of n floats through the given backend.
func Malloc(b Backend, n int) ([]float32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative buffer size %d", ErrInvalidLength, n)
	}

	e, err := Lookup(b)
	if err != nil {
		return nil, err
	}

	return e.Malloc(n), nil
}
