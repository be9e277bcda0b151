// Package analytics contiene los casos de uso de lectura para el dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

const dashboardRecentMovements = 10 // movimientos en el widget del dashboard

// DashboardUseCase genera el resumen de la página inicial del usuario.
//
// Fuente de datos: AnalyticsRepository (conteos read-only) y MovementRepository (últimos movimientos).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	movRepo       repository.MovementRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, movRepo: movRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO para el usuario autenticado.
//
// Cuatro llamadas en paralelo:
//  1. CountProducts            → TotalProducts
//  2. CountLowStock            → LowStockCount
//  3. CountMovementsSince(hoy) → MovementsToday
//  4. ListRecent(10)           → RecentMovements
func (uc *DashboardUseCase) GetSummary(ctx context.Context, user dto.UserIdentity) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int64
		err error
	}
	type recentResult struct {
		list []dto.MovementResponse
		err  error
	}

	productsCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	todayCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx)
		lowCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovementsSince(ctx, todayStart)
		todayCh <- countResult{n, err}
	}()
	go func() {
		list, err := uc.movRepo.ListRecent(ctx, dashboardRecentMovements)
		if err != nil {
			recentCh <- recentResult{nil, err}
			return
		}
		out := make([]dto.MovementResponse, 0, len(list))
		for _, m := range list {
			out = append(out, inventory.ToMovementResponse(m))
		}
		recentCh <- recentResult{out, nil}
	}()

	products := <-productsCh
	low := <-lowCh
	today := <-todayCh
	recent := <-recentCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de produtos: %w", products.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", low.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: movimentações de hoje: %w", today.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: últimas movimentações: %w", recent.err)
	}

	return &dto.DashboardSummaryDTO{
		User:            user,
		TotalProducts:   products.n,
		LowStockCount:   low.n,
		MovementsToday:  today.n,
		RecentMovements: recent.list,
		DateLabel:       now.Format("02/01/2006"),
	}, nil
}
