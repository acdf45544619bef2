package dto

import "time"

// PlaceOrderRequest cuerpo de POST /api/orders.
// El stock del bag se descuenta automáticamente al crear la orden.
type PlaceOrderRequest struct {
	ClientID        string `json:"client_id"`
	BagID           string `json:"bag_id"`
	QuantityOrdered int    `json:"quantity_ordered"`
}

// OrderResponse representación HTTP de una Order, con cliente y bag resueltos.
type OrderResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name,omitempty"`
	BagID           string    `json:"bag_id"`
	BagLabel        string    `json:"bag_label,omitempty"` // ej: "#15 - White (40 GSM)"
	QuantityOrdered int       `json:"quantity_ordered"`
	OrderDate       time.Time `json:"order_date"`
}
