// Package ledger contiene el caso de uso central del inventario: colocar una
// orden descuenta stock del bag de forma atómica, validando contra la cantidad
// disponible bajo bloqueo de fila.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// PlaceOrderUseCase valida y registra una orden de venta con descuento de stock
// en una sola transacción, con bloqueo de fila (SELECT FOR UPDATE) sobre el bag.
type PlaceOrderUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	bagRepo    repository.BagRepository
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	bagRepo repository.BagRepository,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		txRunner:   txRunner,
		clientRepo: clientRepo,
		bagRepo:    bagRepo,
	}
}

// PlaceOrder valida la petición, abre una transacción, bloquea la fila del bag,
// re-verifica el stock disponible y aplica descuento + inserción de la orden.
// Commit aplica ambas escrituras; cualquier error hace Rollback y no queda
// ningún efecto parcial (repetir una llamada fallida no acumula nada).
//
// El bloqueo de fila serializa colocaciones concurrentes sobre el mismo bag:
// dos órdenes simultáneas no pueden validar contra stock obsoleto y sobregirar.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.QuantityOrdered <= 0 || in.ClientID == "" || in.BagID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Existencia de cliente y bag antes de abrir la transacción; el stock se
	// re-verifica adentro, ya con la fila bloqueada.
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if bag, err := uc.bagRepo.GetByID(in.BagID); err != nil {
		return nil, err
	} else if bag == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		ClientID:        in.ClientID,
		BagID:           in.BagID,
		QuantityOrdered: in.QuantityOrdered,
		OrderDate:       now,
	}
	var bagLabel string

	err = uc.txRunner.Run(ctx, func(
		bagRepo repository.BagRepository,
		orderRepo repository.OrderRepository,
	) error {
		bag, err := bagRepo.GetForUpdate(in.BagID)
		if err != nil {
			return err
		}
		if bag == nil {
			// El bag pudo borrarse entre el pre-chequeo y el bloqueo.
			return domain.ErrNotFound
		}
		if in.QuantityOrdered > bag.QuantityBales {
			return &domain.InsufficientStockError{
				BagID:     bag.ID,
				Requested: in.QuantityOrdered,
				Available: bag.QuantityBales,
			}
		}
		if err := bagRepo.UpdateQuantity(bag.ID, bag.QuantityBales-in.QuantityOrdered); err != nil {
			return err
		}
		bagLabel = bag.Label()
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	return &dto.OrderResponse{
		ID:              order.ID,
		ClientID:        order.ClientID,
		ClientName:      client.Name,
		BagID:           order.BagID,
		BagLabel:        bagLabel,
		QuantityOrdered: order.QuantityOrdered,
		OrderDate:       order.OrderDate,
	}, nil
}
