package preference

import (
	"context"
	"sync"
)

type MemoryStore struct {
	values map[string]bool
	mutex  sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]bool)}
}

func (m *MemoryStore) IsFahrenheit(_ context.Context) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.values[FahrenheitKey], nil
}

func (m *MemoryStore) SetFahrenheit(_ context.Context, value bool) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[FahrenheitKey] = value
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
