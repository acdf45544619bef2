package repository

import "github.com/ecopack/ecopack-api/internal/domain/entity"

// OrderWithRefs es una orden con los datos del cliente y del bag resueltos
// (join en una sola consulta, para listados).
type OrderWithRefs struct {
	Order      entity.Order
	ClientName string
	BagVariety string
	BagColor   string
	BagGSM     int
}

// OrderRepository define el puerto de persistencia para Order.
// Las órdenes son inmutables: no hay Update ni Delete directos
// (desaparecen solo por cascada al borrar su Client o su Bag).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*OrderWithRefs, error)
	List(limit, offset int) ([]*OrderWithRefs, error)
}
