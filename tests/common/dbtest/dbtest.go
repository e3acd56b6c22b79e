//go:build integration

// Package dbtest boots a disposable PostgreSQL for repository tests. The
// container is shared across a test binary; each test gets its own transaction
// that is rolled back on cleanup so tests never observe each other's rows.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"shareit/internal/infra/db"
	"shareit/internal/pkg/config"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
)

// SetupPool starts the shared container if needed, creates a fresh database
// for the calling test, applies migrations and returns a connected pool.
func SetupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	startContainerOnce(t)

	host, err := container.Host(context.Background())
	require.NoError(t, err, "failed to resolve container host")
	port, err := container.MappedPort(context.Background(), "5432/tcp")
	require.NoError(t, err, "failed to resolve container port")

	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	createDatabase(t, host, port, dbName)

	cfg := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	require.NoError(t, db.Migrate(cfg), "failed to apply migrations")

	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	return pool
}

// BeginTx opens a transaction that is rolled back when the test ends.
func BeginTx(t *testing.T, pool *pgxpool.Pool) pgx.Tx {
	t.Helper()

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "failed to begin transaction")
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

func startContainerOnce(t *testing.T) {
	t.Helper()

	containerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})
}

func createDatabase(t *testing.T, host string, port nat.Port, dbName string) {
	t.Helper()

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanupPool.Close()
		_, _ = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
	})
}
