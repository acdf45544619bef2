package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Agregados de solo lectura calculados en cada petición; nada se cachea.
type DashboardSummaryDTO struct {
	TotalBales    int64 `json:"total_bales"`     // suma de fardos de todos los bags
	LowStockCount int64 `json:"low_stock_count"` // bags con stock <= umbral
	TotalClients  int64 `json:"total_clients"`
	TotalOrders   int64 `json:"total_orders"`

	// Últimas 5 órdenes por orden de inserción (no por order_date).
	RecentOrders []OrderResponse `json:"recent_orders"`

	// Hasta 5 bags en o bajo el umbral, de menor a mayor stock.
	CriticalStock []BagResponse `json:"critical_stock"`

	LowStockThreshold int `json:"low_stock_threshold"` // umbral aplicado (default 10)
}
