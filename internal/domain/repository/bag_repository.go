package repository

import "github.com/ecopack/ecopack-api/internal/domain/entity"

// BagRepository define el puerto de persistencia para Bag.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro de una transacción.
type BagRepository interface {
	Create(bag *entity.Bag) error
	GetByID(id string) (*entity.Bag, error)
	GetForUpdate(id string) (*entity.Bag, error)
	List(limit, offset int) ([]*entity.Bag, error)
	Update(bag *entity.Bag) error
	UpdateQuantity(id string, quantityBales int) error
	Delete(id string) error
}
