package entity

import "time"

// Product representa un producto del inventario.
// CurrentStock solo lo modifica el ledger de movimientos; puede quedar negativo si la política lo permite.
type Product struct {
	ID             int64
	Name           string
	Description    string
	ExpirationDate *time.Time // validade (opcional)
	Unit           string     // unidade de medida: un, kg, cx...
	MinimumStock   int64
	CurrentStock   int64
}

// IsLowStock indica alerta de estoque baixo: estoque atual menor o igual al mínimo.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}
