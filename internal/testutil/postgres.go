// Package testutil starts a throwaway Postgres for storage-backed tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"theater-booking/pkg/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewPostgres runs a migrated postgres container for the duration of t.
// Skipped under -short since it needs a docker daemon.
func NewPostgres(t *testing.T) database.PgxIface {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres-backed test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("theater"),
		postgres.WithUsername("theater"),
		postgres.WithPassword("theater"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(connStr))

	db, err := database.Open(ctx, connStr, 4)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}
