package repository

import "github.com/ecopack/ecopack-api/internal/domain/entity"

// FeedbackWithAuthor entrada del dev log con el username del autor resuelto.
type FeedbackWithAuthor struct {
	Feedback entity.Feedback
	Username string
}

// FeedbackRepository define el puerto de persistencia para Feedback (solo crear y listar).
type FeedbackRepository interface {
	Create(fb *entity.Feedback) error
	List(limit, offset int) ([]*FeedbackWithAuthor, error)
}
