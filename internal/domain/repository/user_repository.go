package repository

import "github.com/ecopack/ecopack-api/internal/domain/entity"

// UserWithRole usuario con el rol de su Profile resuelto (join para el listado admin).
type UserWithRole struct {
	User entity.User
	Role string
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*UserWithRole, error)
}

// ProfileRepository define el puerto de persistencia para Profile.
// Create se invoca únicamente dentro de la transacción de registro de usuario.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
}
