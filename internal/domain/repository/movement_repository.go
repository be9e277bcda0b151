package repository

import (
	"context"

	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el ledger de movimientos (solo inserción).
type MovementRepository interface {
	// Create inserta el movimiento y asigna movement.ID.
	Create(ctx context.Context, movement *entity.Movement) error
	ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.MovementDetail, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.MovementDetail, error)
}
