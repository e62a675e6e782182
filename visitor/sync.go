package visitor

import "sync"

// SyncMap is a thread-safe map
type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// Get returns a value from the map
func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// Load returns existing value or stores the computed one, the first stored value wins
func (m *SyncMap[K, V]) Load(k K, compute func(K) (V, error)) (V, error) {
	if v, ok := m.Get(k); ok {
		return v, nil
	}
	v, err := compute(k)
	if err != nil {
		return v, err
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if existing, ok := m.m[k]; ok {
		return existing, nil
	}
	m.m[k] = v
	return v, nil
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
