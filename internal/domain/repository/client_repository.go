package repository

import "github.com/ecopack/ecopack-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Delete elimina también las órdenes del cliente (cascada en la FK).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
