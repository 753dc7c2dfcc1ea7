//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"washbay/internal/infra"
	"washbay/internal/infra/db"
	"washbay/internal/infra/repository"
	"washbay/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for wait.ForSQL
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "test"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=256m",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
				testUser, testPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(stopCtx)
	})

	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.EnsureSchema(ctx, pool))
	return pool
}

func TestBillingRepository(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t)
	repo := repository.NewBillingRepository(pool)

	chargedAt := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("find before record returns not found", func(t *testing.T) {
		_, err := repo.FindByBookingID(ctx, "B_MISSING")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("record then find round-trips", func(t *testing.T) {
		rec := commands.ChargeRecord{
			BookingID:   "B1",
			PaymentID:   "pay_123",
			AmountCents: 6000,
			Currency:    "USD",
			ChargedAt:   chargedAt,
		}
		require.NoError(t, repo.Record(ctx, rec))

		found, err := repo.FindByBookingID(ctx, "B1")
		require.NoError(t, err)
		assert.Equal(t, "B1", found.BookingID)
		assert.Equal(t, "pay_123", found.PaymentID)
		assert.Equal(t, int64(6000), found.AmountCents)
		assert.Equal(t, "USD", found.Currency)
		assert.True(t, found.ChargedAt.Equal(chargedAt))
	})

	t.Run("duplicate record is a no-op, first record wins", func(t *testing.T) {
		dup := commands.ChargeRecord{
			BookingID:   "B1",
			PaymentID:   "pay_999",
			AmountCents: 9999,
			Currency:    "EUR",
			ChargedAt:   chargedAt.Add(time.Hour),
		}
		require.NoError(t, repo.Record(ctx, dup))

		found, err := repo.FindByBookingID(ctx, "B1")
		require.NoError(t, err)
		assert.Equal(t, "pay_123", found.PaymentID)
		assert.Equal(t, int64(6000), found.AmountCents)
	})
}
