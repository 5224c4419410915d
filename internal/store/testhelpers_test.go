package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// testDSN отдаёт базу из SURVIVOR_TEST_DSN, иначе поднимает PostgreSQL 16
// в testcontainer. Без docker тест пропускается.
func testDSN(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv("SURVIVOR_TEST_DSN"); dsn != "" {
		return dsn
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "starting postgres container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminating postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "getting connection string")
	return dsn
}

// setupPostgres применяет миграции и очищает runs.
func setupPostgres(t *testing.T) *Postgres {
	t.Helper()
	dsn := testDSN(t)
	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, dsn))

	p, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	_, err = p.pool.Exec(ctx, "TRUNCATE runs")
	require.NoError(t, err)
	return p
}
