package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/HypixelVerify_Go/internal/database"
	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	ctx := context.Background()
	var terminate func()

	if !testing.Short() {
		terminate = setupPool(ctx)
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupPool(ctx context.Context) (terminate func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupPool (likely Docker issue): %v\n", r)
			terminate = func() {}
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}
	stop := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return stop
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{URL: connStr})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return stop
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return stop
	}

	testPool = pool
	return stop
}

func newRepo(t *testing.T) *VerificationRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(), `TRUNCATE verification_records`)
	require.NoError(t, err)
	return NewVerificationRepository(testPool)
}

func TestVerificationRepository_PutGetDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, found, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.False(t, found)

	until := time.Now().Add(6 * time.Hour).Truncate(time.Millisecond)
	require.NoError(t, repo.Put(ctx, domain.VerificationRecord{UserID: "1", Verified: true, CooldownUntil: &until}))

	rec, found, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, rec.Verified)
	require.NotNil(t, rec.CooldownUntil)
	assert.True(t, until.Equal(*rec.CooldownUntil))

	// Upsert clears the cooldown for an admin re-verification
	require.NoError(t, repo.Put(ctx, domain.VerificationRecord{UserID: "1", Verified: true}))
	rec, _, err = repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, rec.CooldownUntil)

	require.NoError(t, repo.Delete(ctx, "1"))
	_, found, err = repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, repo.Delete(ctx, "1"))
}

func TestVerificationRepository_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Millisecond)
	later := now.Add(6 * time.Hour)
	want := []domain.VerificationRecord{
		{UserID: "10", Verified: true, CooldownUntil: &later},
		{UserID: "20", Verified: true},
	}
	for _, rec := range want {
		require.NoError(t, repo.Put(ctx, rec))
	}
	require.NoError(t, repo.PersistAll(ctx))

	got, err := NewVerificationRepository(testPool).LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got["10"].CooldownUntil)
	assert.True(t, later.Equal(*got["10"].CooldownUntil))
	assert.Nil(t, got["20"].CooldownUntil)
}

func TestVerificationRepository_PersistAllPrunesRows(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.VerificationRecord{UserID: "keep", Verified: true}))

	// A row written behind the repository's back is not part of its snapshot
	_, err := testPool.Exec(ctx, `INSERT INTO verification_records (user_id, verified) VALUES ('stray', TRUE)`)
	require.NoError(t, err)

	require.NoError(t, repo.PersistAll(ctx))

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Contains(t, all, "keep")
}
