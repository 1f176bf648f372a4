package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/set-night/mindfulchat/internal/domain"
)

// StateRepository persists the whole AppState as one serialized blob under a
// single named slot. Every save overwrites the previous blob; there are no
// partial writes.
type StateRepository struct {
	db   *sql.DB
	slot string
}

func NewStateRepository(db *sql.DB, slot string) *StateRepository {
	return &StateRepository{db: db, slot: slot}
}

// Load returns the stored state, or nil when no usable state exists. A
// missing or corrupt blob means "no prior state" and is never an error.
func (r *StateRepository) Load(ctx context.Context) (*domain.AppState, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM app_state WHERE slot = ?`, r.slot,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Warn("discarding corrupt state blob", "slot", r.slot, "error", err)
		return nil, nil
	}
	return state.Normalize(), nil
}

// Save serializes and writes the whole state.
func (r *StateRepository) Save(ctx context.Context, state *domain.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_state (slot, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		r.slot, data, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
