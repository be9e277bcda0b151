package postgres

import (
	"context"

	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo adaptador del ledger de movimientos (append-only).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento y asigna movement.ID. Producto o usuario inexistente → ErrNotFound (FK).
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movimentacoes (produto_id, usuario_id, tipo, quantidade, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, m.ProductID, m.UserID, string(m.Type), m.Quantity, m.Date).Scan(&m.ID)
	if err != nil {
		return mapError("insert movement", err)
	}
	return nil
}

const movementDetailQuery = `
	SELECT m.id, m.produto_id, m.usuario_id, m.tipo, m.quantidade, m.data, p.nome, u.nome
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	JOIN usuarios u ON u.id = m.usuario_id`

// ListByProduct últimos movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.MovementDetail, error) {
	query := movementDetailQuery + ` WHERE m.produto_id = $1 ORDER BY m.data DESC, m.id DESC LIMIT $2`
	return r.list(ctx, "list movements by product", query, productID, limit)
}

// ListRecent últimos movimientos del ledger.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementDetail, error) {
	query := movementDetailQuery + ` ORDER BY m.data DESC, m.id DESC LIMIT $1`
	return r.list(ctx, "list recent movements", query, limit)
}

func (r *MovementRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.MovementDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	var list []*entity.MovementDetail
	for rows.Next() {
		var d entity.MovementDetail
		var tipo string
		if err := rows.Scan(&d.ID, &d.ProductID, &d.UserID, &tipo, &d.Quantity, &d.Date, &d.ProductName, &d.UserName); err != nil {
			return nil, mapError(op, err)
		}
		d.Type = entity.MovementType(tipo)
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return list, nil
}
