package dto

import "time"

// RecordMovementRequest formulario de POST /api/movimentacao.
// Tipo: entrada | saida. Data es opcional (por defecto, ahora).
type RecordMovementRequest struct {
	ProductID string `form:"produto_id"`
	Type      string `form:"tipo"`
	Quantity  string `form:"quantidade"`
	Date      string `form:"data"`
}

// MovementResponse movimiento del ledger para listados.
type MovementResponse struct {
	ID          int64
	ProductID   int64
	ProductName string
	UserName    string
	Type        string
	TypeLabel   string
	Quantity    int64
	Date        time.Time
}
