package postgres

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBTX = (*pgxpool.Pool)(nil)
	_ DBTX = (*pgx.Conn)(nil)
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS quotes (
		id            text PRIMARY KEY,
		quote_number  text NOT NULL DEFAULT '',
		status        text NOT NULL,
		created_at    timestamptz NOT NULL,
		updated_at    timestamptz NOT NULL,
		customer_name text NOT NULL,
		honorific     text NOT NULL,
		issue_date    text NOT NULL DEFAULT '',
		expiry_date   text NOT NULL DEFAULT '',
		items         jsonb NOT NULL,
		tax_rate      bigint NOT NULL,
		subtotal      bigint NOT NULL,
		tax_amount    bigint NOT NULL,
		total_amount  bigint NOT NULL,
		remarks       text NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS quotes_updated_at_idx ON quotes (updated_at DESC)`,
	`CREATE TABLE IF NOT EXISTS company_settings (
		id                  text PRIMARY KEY,
		company_name        text NOT NULL DEFAULT '',
		zip_code            text NOT NULL DEFAULT '',
		address             text NOT NULL DEFAULT '',
		tel                 text NOT NULL DEFAULT '',
		email               text NOT NULL DEFAULT '',
		registration_number text NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS quote_sequences (
		year       integer PRIMARY KEY,
		last_value bigint NOT NULL
	)`,
}

// EnsureSchema creates the service tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Printf("[postgres] schema ready")
	return nil
}
