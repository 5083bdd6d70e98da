//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"localnotes/internal/notes/adapters/persistence"
	"localnotes/internal/notes/adapters/postgres"
	"localnotes/internal/notes/app"
	pgdb "localnotes/pkg/db/postgres"
	"localnotes/pkg/logger"
)

const migrationsDir = "../../../../migrations/notes"

func TestSlotStoreAgainstPostgres(t *testing.T) {
	ctx := logger.NewContext(context.Background(), logger.NewNop())

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("notes"),
		tcpostgres.WithUsername("notes"),
		tcpostgres.WithPassword("notes"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, pgdb.MigrateDSN(ctx, dsn, migrationsDir))
	// Second run is a no-op.
	require.NoError(t, pgdb.MigrateDSN(ctx, dsn, migrationsDir))

	db, err := pgdb.New(ctx, dsn, 1, 2)
	require.NoError(t, err)
	require.NoError(t, db.CheckSlots(ctx))

	var appName string
	require.NoError(t, db.Pool().QueryRow(ctx, "SELECT current_setting('application_name')").Scan(&appName))
	assert.Equal(t, pgdb.ApplicationName, appName)

	slots := postgres.NewSlotStore(db.Pool(), func() { db.Close(ctx) })
	t.Cleanup(func() { _ = slots.Close() })

	_, found, err := slots.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, found)

	store := app.NewNoteStore(persistence.NewJSONStorage(slots, ""))
	store.Load(ctx)
	_, err = store.Add(ctx, "first", "one")
	require.NoError(t, err)
	_, err = store.Add(ctx, "second", "two")
	require.NoError(t, err)

	reloaded := app.NewNoteStore(persistence.NewJSONStorage(slots, "")).Load(ctx)
	require.Len(t, reloaded, 2)
	assert.Equal(t, "second", reloaded[0].Title)
	assert.Equal(t, store.List(ctx), reloaded)
}
