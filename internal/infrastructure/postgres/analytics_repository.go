package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts total de productos del catálogo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, "count products", `SELECT COUNT(*) FROM produtos`)
}

// CountLowStock productos en alerta (estoque_atual <= estoque_minimo).
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int64, error) {
	return r.count(ctx, "count low stock", `SELECT COUNT(*) FROM produtos WHERE estoque_atual <= estoque_minimo`)
}

// CountMovementsSince movimientos con data >= since.
func (r *AnalyticsRepo) CountMovementsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, "count movements", `SELECT COUNT(*) FROM movimentacoes WHERE data >= $1`, since)
}

func (r *AnalyticsRepo) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapError(op, err)
	}
	return n, nil
}
