package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nome, COALESCE(descricao, ''), validade, unidade, estoque_minimo, estoque_atual`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna product.ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO produtos (nome, descricao, validade, unidade, estoque_minimo, estoque_atual)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.ExpirationDate, product.Unit,
		product.MinimumStock, product.CurrentStock,
	).Scan(&product.ID)
	if err != nil {
		return mapError("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get product", err)
	}
	return p, nil
}

// List devuelve los productos ordenados por nombre; con search filtra por nome ILIKE %search%.
func (r *ProductRepo) List(ctx context.Context, search string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos`
	var args []any
	if search != "" {
		query += ` WHERE nome ILIKE $1 ESCAPE '\'`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY nome, id`
	return r.query(ctx, "list products", query, args...)
}

// ListLowStock productos con estoque_atual <= estoque_minimo.
func (r *ProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE estoque_atual <= estoque_minimo ORDER BY nome, id`
	return r.query(ctx, "list low stock", query)
}

// AdjustStock aplica delta en el servidor (sin read-modify-write) y devuelve el nuevo saldo.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID, delta int64) (int64, error) {
	query := `UPDATE produtos SET estoque_atual = estoque_atual + $2 WHERE id = $1 RETURNING estoque_atual`
	var stock int64
	if err := r.q.QueryRow(ctx, query, productID, delta).Scan(&stock); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NewNotFoundError("produto")
		}
		return 0, mapError("adjust stock", err)
	}
	return stock, nil
}

func (r *ProductRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return list, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ExpirationDate, &p.Unit, &p.MinimumStock, &p.CurrentStock)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
