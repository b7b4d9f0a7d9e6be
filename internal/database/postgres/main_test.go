package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/database"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var teardown func()
	if !testing.Short() {
		testPool, teardown = setupDatabase(context.Background())
	}

	code := m.Run()

	if teardown != nil {
		teardown()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) (pool *pgxpool.Pool, teardown func()) {
	// testcontainers panics when no Docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
			pool, teardown = nil, nil
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
		return nil, nil
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		terminate()
		return nil, nil
	}

	if _, err := database.Migrate(ctx, connStr); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		terminate()
		return nil, nil
	}

	pool, err = database.NewPool(ctx, connStr, 20, time.Minute, time.Hour)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to database: %v\n", err)
		terminate()
		return nil, nil
	}

	return pool, func() {
		pool.Close()
		terminate()
	}
}

// requireDB skips when no database is available and otherwise empties
// every table so each test starts clean.
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE equipped_items, inventory, characters, items, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return testPool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, username string) *domain.User {
	t.Helper()
	u, err := NewUserRepository(pool).CreateUser(context.Background(), username)
	require.NoError(t, err)
	return u
}

func seedItem(t *testing.T, pool *pgxpool.Pool, code int, name string, stats domain.Stats, price int) {
	t.Helper()
	err := NewCatalogRepository(pool).CreateItem(context.Background(), &domain.Item{
		Code: code, Name: name, Stats: stats, Price: price,
	})
	require.NoError(t, err)
}

func seedCharacter(t *testing.T, pool *pgxpool.Pool, userID, name string, money int) *domain.Character {
	t.Helper()
	c := &domain.Character{
		UserID: userID,
		Name:   name,
		Health: domain.BaseHealth,
		Power:  domain.BasePower,
		Money:  money,
	}
	require.NoError(t, NewCharacterRepository(pool).CreateCharacter(context.Background(), c, name))
	return c
}
