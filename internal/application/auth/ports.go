package auth

import (
	"context"

	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// AuthTxRunner ejecuta el alta de usuario dentro de una transacción: usuario y
// Profile por defecto se crean juntos o no se crea ninguno. La creación del
// Profile es un paso explícito del registro, no un hook de persistencia.
type AuthTxRunner interface {
	RunAuth(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}
