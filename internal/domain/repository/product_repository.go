package repository

import (
	"context"

	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta el producto y asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve todos los productos o los que contienen search (sin distinguir mayúsculas), por nombre.
	List(ctx context.Context, search string) ([]*entity.Product, error)
	// ListLowStock devuelve los productos con estoque_atual <= estoque_minimo.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	// AdjustStock suma delta a estoque_atual en el datastore y devuelve el nuevo saldo.
	// ErrNotFound si el producto no existe.
	AdjustStock(ctx context.Context, productID, delta int64) (int64, error)
}
