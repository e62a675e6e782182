package coerce

import (
	"fmt"
	"sync/atomic"
)

var defaultRegistry atomic.Pointer[Registry]

// Default returns process wide registry, it is created with default options on first use
func Default() *Registry {
	if ret := defaultRegistry.Load(); ret != nil {
		return ret
	}
	registry, err := New()
	if err != nil {
		panic(fmt.Sprintf("failed to create default registry: %v", err))
	}
	defaultRegistry.CompareAndSwap(nil, registry)
	return defaultRegistry.Load()
}

// SetDefault replaces process wide registry, nil restores the default one
func SetDefault(registry *Registry) {
	defaultRegistry.Store(registry)
}

// To converts value to T with the default registry
func To[T any](value any) (T, error) {
	return Convert[T](Default(), value)
}
