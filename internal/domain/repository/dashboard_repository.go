package repository

import (
	"context"

	"github.com/ecopack/ecopack-api/internal/domain/entity"
)

// DashboardRepository consultas agregadas de solo lectura para el dashboard.
// Sin efectos secundarios; cada método es una consulta independiente para
// poder paralelizarlas desde el caso de uso.
type DashboardRepository interface {
	// StockTotals devuelve la suma de fardos de todos los bags (0 si no hay)
	// y cuántos bags están en o por debajo del umbral de stock bajo.
	StockTotals(ctx context.Context, threshold int) (totalBales, lowStockCount int64, err error)

	// EntityCounts devuelve el total de clientes y de órdenes.
	EntityCounts(ctx context.Context) (clients, orders int64, err error)

	// RecentOrders devuelve las últimas órdenes por orden de inserción
	// (no por order_date), con cliente y bag resueltos.
	RecentOrders(ctx context.Context, limit int) ([]*OrderWithRefs, error)

	// CriticalStock devuelve hasta limit bags en o por debajo del umbral,
	// ordenados de menor a mayor cantidad.
	CriticalStock(ctx context.Context, threshold, limit int) ([]*entity.Bag, error)
}
