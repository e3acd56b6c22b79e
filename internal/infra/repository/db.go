// Package repository contains all database access. Each entity has its own
// file with explicit parameterized SQL; no business logic lives here, only
// queries and type mapping.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn and
// pgx.Tx. Integration tests pass a transaction that is rolled back after each
// test, which gives per-test isolation without manual cleanup.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
