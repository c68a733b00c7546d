//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/akashtandel42/Salesmanagement/internal/domain"
	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
	"github.com/akashtandel42/Salesmanagement/pkg/config"
)

func setupPostgresContainer(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("salesmanagement_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, pool))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return pool, cleanup
}

func TestSaleRepo_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewSaleRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	sale := &entity.Sale{
		CustomerName: "John Doe",
		Amount:       decimal.RequireFromString("100.50"),
		SaleDate:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		ProductID:    1,
		RegionID:     2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, sale))
	require.NotZero(t, sale.ID)

	got, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, sale.Amount.Equal(got.Amount), "NUMERIC conserva el monto exacto")
	assert.True(t, sale.SaleDate.Equal(got.SaleDate))

	got.Amount = decimal.NewFromInt(200)
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(updated.Amount))

	require.NoError(t, repo.Delete(ctx, sale.ID))
	missing, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaleRepo_ListOrdenadoPorID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewSaleRepository(pool)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Sale{
			Amount:   decimal.NewFromInt(int64(i)),
			SaleDate: time.Now().UTC(),
		}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func TestProductRepo_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewProductRepository(pool)
	ctx := context.Background()

	p := &entity.Product{Name: "Laptop", Description: "14 pulgadas", Price: decimal.RequireFromString("999.99")}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Laptop", got.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.NoError(t, repo.Delete(ctx, p.ID))
}

func TestUserRepo_UsernameDuplicado(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	pool, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewUserRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "h", CreatedAt: time.Now()}))
	err := repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "h2", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	u, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "h", u.PasswordHash)
}
