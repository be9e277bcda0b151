package dto

import "time"

// StockReportDTO snapshot del estoque para exportar (PDF / XLSX).
type StockReportDTO struct {
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	Products    []ProductResponse
	Alerts      []ProductResponse
}
