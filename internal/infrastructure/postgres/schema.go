package postgres

import (
	"context"
	"fmt"
)

// schemaStatements DDL idempotente; montos en NUMERIC(18,2) mapeados a decimal.Decimal.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(18,2) NOT NULL CHECK (price >= 0),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id            BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL DEFAULT '',
		amount        NUMERIC(18,2) NOT NULL CHECK (amount >= 0),
		sale_date     TIMESTAMPTZ NOT NULL,
		product_id    BIGINT NOT NULL,
		region_id     BIGINT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
