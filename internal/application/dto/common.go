package dto

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Tipos de aviso flash mostrados en la próxima página renderizada.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash aviso transitorio para el usuario.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
