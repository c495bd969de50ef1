package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/constants"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

type postgresCatalogRepository struct {
	db     *sql.DB
	tenant string
}

// NewPostgresCatalogRepository returns a catalog store on Postgres. The
// table is append-only: price updates insert new rows and queries see only
// the newest row per item ID.
func NewPostgresCatalogRepository(db *sql.DB, tenant string) (repository.CatalogRepository, error) {
	repo := &postgresCatalogRepository{db: db, tenant: tenant}
	if err := repo.ensureSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (p *postgresCatalogRepository) ensureSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS catalog_items (
			id           TEXT        NOT NULL,
			name         TEXT        NOT NULL,
			price        NUMERIC     NOT NULL DEFAULT 0,
			category     TEXT        NOT NULL DEFAULT '',
			active       BOOLEAN     NOT NULL DEFAULT TRUE,
			tenant       TEXT        NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (id, last_updated)
		)`)
	if err != nil {
		return fmt.Errorf("catalog schema: %w", err)
	}
	_, err = p.db.Exec(`CREATE INDEX IF NOT EXISTS idx_catalog_items_tenant_name
		ON catalog_items (tenant, name)`)
	return err
}

// latestJoin restricts a query to the newest row per item ID within the
// tenant, active rows only. Placeholders $1 = tenant.
const latestJoin = `
	FROM catalog_items c
	INNER JOIN (
		SELECT id, MAX(last_updated) AS last_updated
		FROM catalog_items
		WHERE tenant = $1
		GROUP BY id
	) latest ON latest.id = c.id AND latest.last_updated = c.last_updated
	WHERE c.tenant = $1 AND c.active = TRUE`

func (p *postgresCatalogRepository) SearchAny(ctx context.Context, terms []string, limit int) ([]entity.CatalogItem, error) {
	terms = nonEmpty(terms)
	if len(terms) == 0 {
		return nil, nil
	}

	var clauses []string
	args := []interface{}{p.tenant}
	for _, t := range terms {
		args = append(args, "%"+t+"%")
		clauses = append(clauses, fmt.Sprintf("c.name ILIKE $%d", len(args)))
	}
	args = append(args, terms[0]+"%")
	prefixArg := len(args)
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.price, c.category, c.active, c.last_updated
		%s AND (%s)
		ORDER BY CASE WHEN c.name ILIKE $%d THEN 0 ELSE 1 END, LENGTH(c.name), c.price
		LIMIT $%d`,
		latestJoin, strings.Join(clauses, " OR "), prefixArg, len(args))

	return p.queryItems(ctx, query, args...)
}

func (p *postgresCatalogRepository) SearchAll(ctx context.Context, terms []string, category string, limit int) ([]entity.CatalogItem, error) {
	terms = nonEmpty(terms)
	if len(terms) == 0 {
		return nil, nil
	}

	var clauses []string
	args := []interface{}{p.tenant}
	for _, t := range terms {
		args = append(args, "%"+t+"%")
		clauses = append(clauses, fmt.Sprintf("c.name ILIKE $%d", len(args)))
	}
	if category != "" {
		args = append(args, "%"+category+"%")
		clauses = append(clauses, fmt.Sprintf("c.name ILIKE $%d", len(args)))
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.price, c.category, c.active, c.last_updated
		%s AND %s
		ORDER BY LENGTH(c.name), c.price
		LIMIT $%d`,
		latestJoin, strings.Join(clauses, " AND "), len(args))

	return p.queryItems(ctx, query, args...)
}

func (p *postgresCatalogRepository) GetByCategory(ctx context.Context, category string, limit int) ([]entity.CatalogItem, error) {
	args := []interface{}{p.tenant, "%" + category + "%", limit}
	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.price, c.category, c.active, c.last_updated
		%s AND c.name ILIKE $2
		ORDER BY LENGTH(c.name), c.price
		LIMIT $3`, latestJoin)

	return p.queryItems(ctx, query, args...)
}

func (p *postgresCatalogRepository) SaveMany(ctx context.Context, items []entity.CatalogItem) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_items (id, name, price, category, active, tenant, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id, last_updated) DO UPDATE
		SET name = EXCLUDED.name, price = EXCLUDED.price,
		    category = EXCLUDED.category, active = EXCLUDED.active`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx,
			item.ID, item.Name, item.Price, item.Category, item.Active,
			p.tenant, item.LastUpdated); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// queryItems runs a catalog query with one reconnect-and-retry. A second
// failure surfaces as ErrStoreUnavailable so the caller can answer with the
// transient-error sentence instead of an empty result.
func (p *postgresCatalogRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]entity.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultQueryTimeoutSeconds*time.Second)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("catalog query failed, retrying once: %v", err)
		if pingErr := p.db.PingContext(ctx); pingErr != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, pingErr)
		}
		rows, err = p.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
		}
	}
	defer rows.Close()

	var out []entity.CatalogItem
	for rows.Next() {
		var item entity.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category,
			&item.Active, &item.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	return out, nil
}

func nonEmpty(terms []string) []string {
	out := terms[:0:0]
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
