package entity

import "time"

// MovementType tipo de movimiento de estoque. Los valores son los persistidos en movimentacoes.tipo.
type MovementType string

const (
	MovementTypeInbound  MovementType = "entrada"
	MovementTypeOutbound MovementType = "saida"
)

// Valid indica si el tipo es uno de los dos admitidos.
func (t MovementType) Valid() bool {
	return t == MovementTypeInbound || t == MovementTypeOutbound
}

// Delta devuelve el efecto firmado de quantity sobre estoque_atual.
func (t MovementType) Delta(quantity int64) int64 {
	if t == MovementTypeOutbound {
		return -quantity
	}
	return quantity
}

// Label nombre legible para la UI.
func (t MovementType) Label() string {
	switch t {
	case MovementTypeInbound:
		return "entrada"
	case MovementTypeOutbound:
		return "saída"
	default:
		return string(t)
	}
}

// Movement registro inmutable del ledger (append-only).
type Movement struct {
	ID        int64
	ProductID int64
	UserID    int64 // atribución
	Type      MovementType
	Quantity  int64 // siempre > 0; el signo lo da Type
	Date      time.Time
}

// MovementDetail movimiento con los nombres de producto y usuario para listados.
type MovementDetail struct {
	Movement
	ProductName string
	UserName    string
}
