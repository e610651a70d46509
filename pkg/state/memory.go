package state

import (
	"context"
	"sync"

	"gitlab.connectwisedev.com/coffee-service/models"
)

// MemoryRepository keeps encoded records in process memory. Records go
// through the same codec as the durable backends.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string][]byte)}
}

func (r *MemoryRepository) Load(_ context.Context, key string) (*models.PersistedState, error) {
	r.mu.RLock()
	b, ok := r.records[key]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNoState
	}
	return Decode(b)
}

func (r *MemoryRepository) Save(_ context.Context, key string, state models.PersistedState) error {
	b, err := Encode(state)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.records[key] = b
	r.mu.Unlock()
	return nil
}

// Put stores a raw record as is.
func (r *MemoryRepository) Put(key string, raw []byte) {
	r.mu.Lock()
	r.records[key] = raw
	r.mu.Unlock()
}
