package ledger

import (
	"context"

	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el descuento de stock y la inserción de la orden
// se apliquen juntos o no se apliquen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bagRepo repository.BagRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
