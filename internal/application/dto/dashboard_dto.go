package dto

// DashboardSummaryDTO datos de la página /dashboard.
type DashboardSummaryDTO struct {
	User            UserIdentity
	TotalProducts   int64
	LowStockCount   int64
	MovementsToday  int64
	RecentMovements []MovementResponse
	DateLabel       string // ej: "19/10/2026"
}
