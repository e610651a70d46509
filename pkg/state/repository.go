package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gitlab.connectwisedev.com/coffee-service/models"
)

var (
	// ErrNoState means nothing has been saved under the key yet.
	ErrNoState = errors.New("no persisted state")
	// ErrCorruptState means a record exists but cannot be decoded.
	ErrCorruptState = errors.New("corrupt persisted state")
)

// Repository stores one serialized PersistedState per key. Writes are
// last-write-wins; there is no locking between writers.
type Repository interface {
	Load(ctx context.Context, key string) (*models.PersistedState, error)
	Save(ctx context.Context, key string, state models.PersistedState) error
}

func Encode(state models.PersistedState) ([]byte, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return b, nil
}

func Decode(b []byte) (*models.PersistedState, error) {
	var state models.PersistedState
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &state, nil
}
