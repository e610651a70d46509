package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gitlab.connectwisedev.com/coffee-service/models"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// PostgresRepository keeps one JSONB row per key in app_state.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Migrate creates the app_state table if it does not exist.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Load(ctx context.Context, key string) (*models.PersistedState, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query state %s: %w", key, err)
	}
	return Decode(payload)
}

func (r *PostgresRepository) Save(ctx context.Context, key string, state models.PersistedState) error {
	b, err := Encode(state)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, payload)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW()
	`, key, string(b))
	if err != nil {
		return fmt.Errorf("failed to upsert state %s: %w", key, err)
	}
	return nil
}
