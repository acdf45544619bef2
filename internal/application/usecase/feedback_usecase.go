package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// FeedbackUseCase registro de sugerencias/incidencias: crear (cualquier usuario
// autenticado) y listar (solo admin, gateado en la capa HTTP).
type FeedbackUseCase struct {
	repo repository.FeedbackRepository
}

// NewFeedbackUseCase construye el caso de uso.
func NewFeedbackUseCase(repo repository.FeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

// Create registra una entrada atribuida al usuario autenticado (userID del token).
func (uc *FeedbackUseCase) Create(userID string, in dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if userID == "" || in.Subject == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	fb := &entity.Feedback{
		ID:        uuid.New().String(),
		UserID:    userID,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(fb); err != nil {
		return nil, err
	}
	return &dto.FeedbackResponse{
		ID:        fb.ID,
		Subject:   fb.Subject,
		Message:   fb.Message,
		CreatedAt: fb.CreatedAt,
	}, nil
}

// List lista el dev log con el autor resuelto, lo más reciente primero.
func (uc *FeedbackUseCase) List(page dto.PageRequest) ([]*dto.FeedbackResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FeedbackResponse, 0, len(list))
	for _, f := range list {
		out = append(out, &dto.FeedbackResponse{
			ID:        f.Feedback.ID,
			Username:  f.Username,
			Subject:   f.Feedback.Subject,
			Message:   f.Feedback.Message,
			CreatedAt: f.Feedback.CreatedAt,
		})
	}
	return out, nil
}
