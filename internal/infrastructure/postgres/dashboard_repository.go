package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
// Recibe el pool directamente: sus métodos corren en paralelo desde el caso
// de uso y cada uno toma su propia conexión.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de agregados.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// StockTotals devuelve la suma de fardos (0 sin filas, vía COALESCE) y el
// conteo de bags en o bajo el umbral.
func (r *DashboardRepo) StockTotals(ctx context.Context, threshold int) (totalBales, lowStockCount int64, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity_bales), 0)                              AS total_bales,
	    COUNT(*) FILTER (WHERE quantity_bales <= $1)                  AS low_stock_count
	FROM bags`
	if err := r.pool.QueryRow(ctx, query, threshold).Scan(&totalBales, &lowStockCount); err != nil {
		return 0, 0, fmt.Errorf("dashboard.StockTotals: %w", err)
	}
	return totalBales, lowStockCount, nil
}

// EntityCounts devuelve el total de clientes y de órdenes.
func (r *DashboardRepo) EntityCounts(ctx context.Context) (clients, orders int64, err error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM clients) AS total_clients,
	    (SELECT COUNT(*) FROM orders)  AS total_orders`
	if err := r.pool.QueryRow(ctx, query).Scan(&clients, &orders); err != nil {
		return 0, 0, fmt.Errorf("dashboard.EntityCounts: %w", err)
	}
	return clients, orders, nil
}

// RecentOrders devuelve las últimas órdenes por orden de inserción
// (created_seq DESC, no order_date), con cliente y bag resueltos.
func (r *DashboardRepo) RecentOrders(ctx context.Context, limit int) ([]*repository.OrderWithRefs, error) {
	const query = `
	SELECT o.id, o.client_id, o.bag_id, o.quantity_ordered, o.order_date,
	       c.name, b.variety, b.color, b.gsm
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	JOIN bags    b ON b.id = o.bag_id
	ORDER BY o.created_seq DESC
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RecentOrders: %w", err)
	}
	defer rows.Close()
	var list []*repository.OrderWithRefs
	for rows.Next() {
		var o repository.OrderWithRefs
		if err := rows.Scan(
			&o.Order.ID, &o.Order.ClientID, &o.Order.BagID, &o.Order.QuantityOrdered, &o.Order.OrderDate,
			&o.ClientName, &o.BagVariety, &o.BagColor, &o.BagGSM,
		); err != nil {
			return nil, fmt.Errorf("dashboard.RecentOrders scan: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// CriticalStock devuelve hasta limit bags en o bajo el umbral, de menor a mayor stock.
func (r *DashboardRepo) CriticalStock(ctx context.Context, threshold, limit int) ([]*entity.Bag, error) {
	const query = `
	SELECT id, variety, color, gsm, quantity_bales, location, last_updated
	FROM bags
	WHERE quantity_bales <= $1
	ORDER BY quantity_bales ASC
	LIMIT $2`
	rows, err := r.pool.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.CriticalStock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bag
	for rows.Next() {
		var b entity.Bag
		if err := rows.Scan(&b.ID, &b.Variety, &b.Color, &b.GSM, &b.QuantityBales, &b.Location, &b.LastUpdated); err != nil {
			return nil, fmt.Errorf("dashboard.CriticalStock scan: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
