package entity

import "time"

// Order representa una venta de fardos a un cliente. Es inmutable después de crearse:
// el stock ya fue descontado en la misma transacción, así que no se expone update ni delete.
// Borrar el Client o el Bag referenciado elimina la orden en cascada (FK ON DELETE CASCADE).
type Order struct {
	ID              string
	ClientID        string
	BagID           string
	QuantityOrdered int // fardos, siempre > 0
	OrderDate       time.Time
}
