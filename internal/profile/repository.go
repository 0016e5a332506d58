package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/karimosman/quranlife-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

type Repository interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
	EnsureSchema(ctx context.Context) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS profile_entries (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *repository) Get(ctx context.Context, key string) (*Entry, error) {
	query := `
		SELECT key, value, updated_at
		FROM profile_entries
		WHERE key = $1
	`

	var entry Entry
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&entry.Key,
		&entry.Value,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, ErrInternalServer
	}
	return &entry, nil
}

func (r *repository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO profile_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	// Bind as text so the driver does not encode RawMessage as bytea.
	_, err := r.db.ExecContext(ctx, query, key, string(value))
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM profile_entries WHERE key = $1`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return ErrInternalServer
	}
	return nil
}
