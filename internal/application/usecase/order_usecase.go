package usecase

import (
	"fmt"

	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// OrderUseCase listado de órdenes (solo lectura: colocar órdenes es del paquete ledger,
// y las órdenes son inmutables una vez creadas).
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// GetByID obtiene una orden por ID, con cliente y bag resueltos.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con cliente y bag resueltos, las más recientes primero.
func (uc *OrderUseCase) List(page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *repository.OrderWithRefs) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              o.Order.ID,
		ClientID:        o.Order.ClientID,
		ClientName:      o.ClientName,
		BagID:           o.Order.BagID,
		BagLabel:        fmt.Sprintf("%s - %s (%d GSM)", o.BagVariety, o.BagColor, o.BagGSM),
		QuantityOrdered: o.Order.QuantityOrdered,
		OrderDate:       o.Order.OrderDate,
	}
}
