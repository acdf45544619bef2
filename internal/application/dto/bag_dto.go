package dto

import "time"

// CreateBagRequest cuerpo de POST /api/bags.
// Location vacío usa la bodega por defecto (Athiriver Warehouse).
type CreateBagRequest struct {
	Variety       string `json:"variety"`
	Color         string `json:"color"`
	GSM           int    `json:"gsm"`
	QuantityBales int    `json:"quantity_bales"`
	Location      string `json:"location"`
}

// UpdateBagRequest cuerpo de PUT /api/bags/:id. Editar quantity_bales aquí es una
// corrección administrativa de stock, no una operación del libro de inventario.
type UpdateBagRequest struct {
	Variety       string `json:"variety"`
	Color         string `json:"color"`
	GSM           int    `json:"gsm"`
	QuantityBales int    `json:"quantity_bales"`
	Location      string `json:"location"`
}

// BagResponse representación HTTP de un Bag.
type BagResponse struct {
	ID            string    `json:"id"`
	Variety       string    `json:"variety"`
	Color         string    `json:"color"`
	GSM           int       `json:"gsm"`
	QuantityBales int       `json:"quantity_bales"`
	Location      string    `json:"location"`
	Label         string    `json:"label"` // ej: "#15 - White (40 GSM)"
	LastUpdated   time.Time `json:"last_updated"`
}
