package repository

import (
	"context"
	"slices"
	"sync"

	"nardoo_storefront/internal/usecase/interfaces"
)

// KeyValueMemoryRepository is a process-local store used by tests and STORAGE_DRIVER=memory.

type KeyValueMemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ interfaces.IKeyValueStore = (*KeyValueMemoryRepository)(nil)

func NewKeyValueMemoryRepository() *KeyValueMemoryRepository {
	return &KeyValueMemoryRepository{data: map[string][]byte{}}
}

func (r *KeyValueMemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(v), nil
}

func (r *KeyValueMemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = slices.Clone(value)
	return nil
}
