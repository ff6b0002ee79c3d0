//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"license-management/internal/domain/activity"
	"license-management/internal/domain/licenses"
	"license-management/internal/ports/sharedstore"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// go test -tags integration ./internal/adapters/storage/postgres/...
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "licenses",
				"POSTGRES_PASSWORD": "licenses",
				"POSTGRES_DB":       "licenses",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://licenses:licenses@%s:%s/licenses?sslmode=disable", host, port.Port())

	require.NoError(t, Migrate(ctx, dsn))
	// idempotente
	require.NoError(t, Migrate(ctx, dsn))

	pool, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestIntegration_Repos(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	lic := NewLicensesRepo(pool)
	for _, l := range []licenses.License{
		{ID: "1", LicenseNumber: "LIC-2024-00123", IssueDate: "2024-01-15", ExpiryDate: "2025-01-14", Status: licenses.StatusActive},
		{ID: "2", LicenseNumber: "LIC-2024-00124", IssueDate: "2024-02-20", ExpiryDate: "2025-02-19", Status: licenses.StatusPending},
	} {
		require.NoError(t, lic.Create(ctx, l))
	}
	assert.ErrorIs(t, lic.Create(ctx, licenses.License{ID: "1", LicenseNumber: "LIC-X", Status: licenses.StatusActive}), licenses.ErrAlreadyExists)

	got, err := lic.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, licenses.StatusPending, got.Status)

	_, err = lic.GetByID(ctx, "9")
	assert.ErrorIs(t, err, licenses.ErrNotFound)

	act := NewActivityRepo(pool)
	ts := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	require.NoError(t, act.Append(ctx, activity.Activity{ID: "b", Description: "second", Timestamp: ts, Type: activity.TypeRenewed}))
	require.NoError(t, act.Append(ctx, activity.Activity{ID: "a", Description: "first", Timestamp: ts.Add(-time.Hour), Type: activity.TypeIssued}))

	feed, err := act.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "b", feed[0].ID)
}

func TestIntegration_SharedStore(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	s := NewSharedStore(pool)

	for _, a := range []sharedstore.Action{sharedstore.Increment(), sharedstore.Increment(), sharedstore.Decrement()} {
		require.NoError(t, s.Dispatch(ctx, a))
	}
	c, err := s.Counter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Value)

	require.NoError(t, s.Dispatch(ctx, sharedstore.Reset()))
	c, err = s.Counter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Value)

	u := sharedstore.User{ID: "1", Name: "License Officer 1", Email: "officer1@licenses.gov", Role: "License Officer"}
	require.NoError(t, s.Dispatch(ctx, sharedstore.AddUser(u)))
	require.NoError(t, s.Dispatch(ctx, sharedstore.AddUser(u)))

	st, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalCount)
}
