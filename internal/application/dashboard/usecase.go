// Package dashboard contiene el caso de uso del resumen operativo:
// agregados de stock, conteos de clientes/órdenes, últimas ventas y
// bags en estado crítico. Solo lectura, calculado en cada petición.
package dashboard

import (
	"context"
	"fmt"

	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

const (
	recentOrdersLimit  = 5 // órdenes en el widget de ventas recientes
	criticalStockLimit = 5 // bags en el widget de stock crítico
)

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only).
// El umbral de stock bajo es configurable (default 10 fardos) y se aplica
// tanto al conteo como al listado crítico.
type DashboardUseCase struct {
	repo      repository.DashboardRepository
	threshold int
}

// NewDashboardUseCase construye el caso de uso con el umbral de stock bajo.
func NewDashboardUseCase(repo repository.DashboardRepository, lowStockThreshold int) *DashboardUseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &DashboardUseCase{repo: repo, threshold: lowStockThreshold}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. StockTotals    → TotalBales + LowStockCount
//  2. EntityCounts   → TotalClients + TotalOrders
//  3. RecentOrders   → últimas 5 por orden de inserción
//  4. CriticalStock  → hasta 5 bags bajo el umbral, de menor a mayor
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type stockResult struct {
		total, low int64
		err        error
	}
	type countsResult struct {
		clients, orders int64
		err             error
	}
	type ordersResult struct {
		orders []*repository.OrderWithRefs
		err    error
	}
	type criticalResult struct {
		bags []*entity.Bag
		err  error
	}

	stockCh := make(chan stockResult, 1)
	countsCh := make(chan countsResult, 1)
	ordersCh := make(chan ordersResult, 1)
	criticalCh := make(chan criticalResult, 1)

	go func() {
		total, low, err := uc.repo.StockTotals(ctx, uc.threshold)
		stockCh <- stockResult{total, low, err}
	}()
	go func() {
		clients, orders, err := uc.repo.EntityCounts(ctx)
		countsCh <- countsResult{clients, orders, err}
	}()
	go func() {
		orders, err := uc.repo.RecentOrders(ctx, recentOrdersLimit)
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		bags, err := uc.repo.CriticalStock(ctx, uc.threshold, criticalStockLimit)
		criticalCh <- criticalResult{bags, err}
	}()

	stock := <-stockCh
	counts := <-countsCh
	orders := <-ordersCh
	critical := <-criticalCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: totales de stock: %w", stock.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes recientes: %w", orders.err)
	}
	if critical.err != nil {
		return nil, fmt.Errorf("dashboard: stock crítico: %w", critical.err)
	}

	recent := make([]dto.OrderResponse, 0, len(orders.orders))
	for _, o := range orders.orders {
		recent = append(recent, dto.OrderResponse{
			ID:              o.Order.ID,
			ClientID:        o.Order.ClientID,
			ClientName:      o.ClientName,
			BagID:           o.Order.BagID,
			BagLabel:        fmt.Sprintf("%s - %s (%d GSM)", o.BagVariety, o.BagColor, o.BagGSM),
			QuantityOrdered: o.Order.QuantityOrdered,
			OrderDate:       o.Order.OrderDate,
		})
	}

	criticalOut := make([]dto.BagResponse, 0, len(critical.bags))
	for _, b := range critical.bags {
		criticalOut = append(criticalOut, dto.BagResponse{
			ID:            b.ID,
			Variety:       b.Variety,
			Color:         b.Color,
			GSM:           b.GSM,
			QuantityBales: b.QuantityBales,
			Location:      b.Location,
			Label:         b.Label(),
			LastUpdated:   b.LastUpdated,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalBales:        stock.total,
		LowStockCount:     stock.low,
		TotalClients:      counts.clients,
		TotalOrders:       counts.orders,
		RecentOrders:      recent,
		CriticalStock:     criticalOut,
		LowStockThreshold: uc.threshold,
	}, nil
}
