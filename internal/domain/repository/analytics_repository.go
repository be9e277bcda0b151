package repository

import (
	"context"
	"time"
)

// AnalyticsRepository consultas read-only de conteo para el dashboard.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	CountMovementsSince(ctx context.Context, since time.Time) (int64, error)
}
