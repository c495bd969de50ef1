package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

type postgresOrderRepository struct {
	db *sql.DB
}

// NewPostgresOrderRepository stores service orders in Postgres.
func NewPostgresOrderRepository(db *sql.DB) (repository.OrderRepository, error) {
	repo := &postgresOrderRepository{db: db}
	if err := repo.ensureSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (p *postgresOrderRepository) ensureSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			number         TEXT PRIMARY KEY,
			customer_phone TEXT        NOT NULL,
			description    TEXT        NOT NULL DEFAULT '',
			status         TEXT        NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("orders schema: %w", err)
	}
	return nil
}

func (p *postgresOrderRepository) Save(ctx context.Context, order entity.Order) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO orders (number, customer_phone, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (number) DO UPDATE
		SET customer_phone = EXCLUDED.customer_phone,
		    description = EXCLUDED.description,
		    status = EXCLUDED.status`,
		order.Number, order.CustomerPhone, order.Description, order.Status, order.CreatedAt)
	return err
}

func (p *postgresOrderRepository) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	var order entity.Order
	err := p.db.QueryRowContext(ctx, `
		SELECT number, customer_phone, description, status, created_at
		FROM orders WHERE number = $1`, number).
		Scan(&order.Number, &order.CustomerPhone, &order.Description,
			&order.Status, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (p *postgresOrderRepository) ListByPhone(ctx context.Context, phone string, limit int) ([]entity.Order, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT number, customer_phone, description, status, created_at
		FROM orders WHERE customer_phone = $1
		ORDER BY created_at DESC
		LIMIT $2`, phone, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(&order.Number, &order.CustomerPhone, &order.Description,
			&order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, rows.Err()
}

func (p *postgresOrderRepository) UpdateStatus(ctx context.Context, number, status string) error {
	res, err := p.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE number = $2`, status, number)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("order not found: %s", number)
	}
	return nil
}
