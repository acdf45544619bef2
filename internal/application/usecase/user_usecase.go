package usecase

import (
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// UserUseCase listado de usuarios con su rol (vista administrativa).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con el rol de su Profile resuelto.
func (uc *UserUseCase) List(page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, &dto.UserResponse{
			ID:          u.User.ID,
			Username:    u.User.Username,
			Email:       u.User.Email,
			Role:        u.Role,
			IsSuperuser: u.User.IsSuperuser,
			CreatedAt:   u.User.CreatedAt,
		})
	}
	return out, nil
}
