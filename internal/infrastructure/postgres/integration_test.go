//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/postgres"
	"github.com/jhoicas/sistema-estoque/pkg/config"
)

// startPostgres levanta postgres:16-alpine, aplica las migraciones y devuelve el pool.
// Requiere Docker: go test -tags integration ./...
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "estoque",
				"POSTGRES_PASSWORD": "estoque",
				"POSTGRES_DB":       "estoque",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "arrancar contenedor postgres")
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(cleanupCtx); err != nil {
			t.Logf("terminar contenedor postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	url := fmt.Sprintf("postgres://estoque:estoque@%s:%s/estoque?sslmode=disable", host, port.Port())

	require.NoError(t, postgres.Migrate(ctx, url))
	require.NoError(t, postgres.MigrationStatus(ctx, url))

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 10, ConnectTimeout: 10 * time.Second})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, email string) *entity.User {
	t.Helper()
	u := &entity.User{Name: "Maria", Email: email, PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold"}
	require.NoError(t, postgres.NewUserRepository(pool).Create(context.Background(), u))
	return u
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, name string, minimum, current int64) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Unit: "un", MinimumStock: minimum, CurrentStock: current}
	require.NoError(t, postgres.NewProductRepository(pool).Create(context.Background(), p))
	return p
}

func TestIntegration_Postgres(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	user := seedUser(t, pool, "maria@example.com")

	t.Run("usuarios: email duplicado", func(t *testing.T) {
		repo := postgres.NewUserRepository(pool)
		err := repo.Create(ctx, &entity.User{Name: "Outra", Email: "maria@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)

		got, err := repo.GetByEmail(ctx, "maria@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)

		missing, err := repo.GetByEmail(ctx, "ninguem@example.com")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("productos: búsqueda y alertas", func(t *testing.T) {
		seedProduct(t, pool, "Widget", 10, 10)
		seedProduct(t, pool, "widget grande", 1, 50)
		seedProduct(t, pool, "Desconto 100%", 0, 1)
		repo := postgres.NewProductRepository(pool)

		found, err := repo.List(ctx, "WIDGET")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Widget", found[0].Name)

		// % se busca literal, no como comodín
		found, err = repo.List(ctx, "100%")
		require.NoError(t, err)
		require.Len(t, found, 1)

		low, err := repo.ListLowStock(ctx)
		require.NoError(t, err)
		var names []string
		for _, p := range low {
			names = append(names, p.Name)
		}
		assert.Contains(t, names, "Widget", "estoque_atual == estoque_minimo entra en alerta")
		assert.NotContains(t, names, "widget grande")
	})

	t.Run("productos: restricciones del esquema", func(t *testing.T) {
		err := postgres.NewProductRepository(pool).Create(ctx, &entity.Product{Name: "Ruim", Unit: "un", MinimumStock: -1})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "estoque_minimo", ve.Field)
	})

	t.Run("movimientos: producto inexistente", func(t *testing.T) {
		uc := inventory.NewRecordMovementUseCase(postgres.NewTxRunner(pool), postgres.NewMovementRepository(pool), inventory.Policy{AllowNegativeStock: true})
		_, err := uc.RecordMovement(ctx, inventory.MovementInput{
			ProductID: 999999, UserID: user.ID, Type: entity.MovementTypeInbound, Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "produto não encontrado")
	})

	t.Run("movimientos: usuario inexistente", func(t *testing.T) {
		p := seedProduct(t, pool, "Orfao", 1, 0)
		uc := inventory.NewRecordMovementUseCase(postgres.NewTxRunner(pool), postgres.NewMovementRepository(pool), inventory.Policy{AllowNegativeStock: true})
		_, err := uc.RecordMovement(ctx, inventory.MovementInput{
			ProductID: p.ID, UserID: 999999, Type: entity.MovementTypeInbound, Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "usuário não encontrado")
	})

	t.Run("movimientos: saída sin saldo con política estricta", func(t *testing.T) {
		p := seedProduct(t, pool, "Estrito", 0, 3)
		uc := inventory.NewRecordMovementUseCase(postgres.NewTxRunner(pool), postgres.NewMovementRepository(pool), inventory.Policy{AllowNegativeStock: false})
		_, err := uc.RecordMovement(ctx, inventory.MovementInput{
			ProductID: p.ID, UserID: user.ID, Type: entity.MovementTypeOutbound, Quantity: 5,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		got, err := postgres.NewProductRepository(pool).GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.CurrentStock, "la transacción se revierte")
		movs, err := postgres.NewMovementRepository(pool).ListByProduct(ctx, p.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, movs)
	})

	t.Run("movimientos concurrentes: sin actualizaciones perdidas", func(t *testing.T) {
		p := seedProduct(t, pool, "Concorrente", 0, 100)
		uc := inventory.NewRecordMovementUseCase(postgres.NewTxRunner(pool), postgres.NewMovementRepository(pool), inventory.Policy{AllowNegativeStock: true})

		const workers = 20
		var wg sync.WaitGroup
		errs := make(chan error, workers*2)
		for i := 0; i < workers; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: p.ID, UserID: user.ID, Type: entity.MovementTypeOutbound, Quantity: 3})
				errs <- err
			}()
			go func() {
				defer wg.Done()
				_, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: p.ID, UserID: user.ID, Type: entity.MovementTypeInbound, Quantity: 1})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := postgres.NewProductRepository(pool).GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100-workers*3+workers), got.CurrentStock)

		// Reproducir el ledger da el saldo actual
		movs, err := postgres.NewMovementRepository(pool).ListByProduct(ctx, p.ID, 100)
		require.NoError(t, err)
		require.Len(t, movs, workers*2)
		replay := int64(100)
		for _, m := range movs {
			replay += m.Type.Delta(m.Quantity)
			assert.Equal(t, "Maria", m.UserName)
			assert.Equal(t, "Concorrente", m.ProductName)
		}
		assert.Equal(t, got.CurrentStock, replay)
	})

	t.Run("analytics: conteos", func(t *testing.T) {
		repo := postgres.NewAnalyticsRepository(pool)
		total, err := repo.CountProducts(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(5))

		since := time.Now().Add(-time.Hour)
		n, err := repo.CountMovementsSince(ctx, since)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(40))
	})

	t.Run("errores del datastore", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := postgres.NewProductRepository(pool).List(cancelled, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPersistence) || errors.Is(err, context.Canceled))
	})
}
