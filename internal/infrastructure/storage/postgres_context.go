package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

type postgresContextRepository struct {
	db *sql.DB
}

// NewPostgresContextRepository stores per-customer conversational state as
// a JSONB document keyed by customer ID, so contexts survive restarts.
func NewPostgresContextRepository(db *sql.DB) (repository.ContextRepository, error) {
	repo := &postgresContextRepository{db: db}
	if err := repo.ensureSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (p *postgresContextRepository) ensureSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS customer_contexts (
			customer_id TEXT PRIMARY KEY,
			data        JSONB       NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("context schema: %w", err)
	}
	return nil
}

func (p *postgresContextRepository) Get(ctx context.Context, customerID string) (*entity.CustomerContext, error) {
	var raw []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT data FROM customer_contexts WHERE customer_id = $1`,
		customerID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record entity.CustomerContext
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("context decode for %s: %w", customerID, err)
	}
	return &record, nil
}

func (p *postgresContextRepository) Save(ctx context.Context, record *entity.CustomerContext) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO customer_contexts (customer_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		record.CustomerID, raw, record.LastUsed)
	return err
}

func (p *postgresContextRepository) DeleteExpired(ctx context.Context, ttl time.Duration) (int, error) {
	res, err := p.db.ExecContext(ctx,
		`DELETE FROM customer_contexts WHERE updated_at < $1`,
		time.Now().Add(-ttl))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
