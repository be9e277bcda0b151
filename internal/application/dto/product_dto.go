package dto

import "time"

// CreateProductRequest formulario de POST /api/produtos. Todos los valores llegan como texto
// y se validan en el caso de uso para poder nombrar el campo inválido.
type CreateProductRequest struct {
	Name           string `form:"nome"`
	Description    string `form:"descricao"`
	ExpirationDate string `form:"validade"` // opcional, AAAA-MM-DD
	Unit           string `form:"unidade"`
	MinimumStock   string `form:"estoque_minimo"`
	CurrentStock   string `form:"estoque_atual"`
}

// ProductResponse producto para vistas y reportes.
type ProductResponse struct {
	ID             int64
	Name           string
	Description    string
	ExpirationDate *time.Time
	Unit           string
	MinimumStock   int64
	CurrentStock   int64
	LowStock       bool
}
