package postgres

import (
	"context"
	"fmt"

	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo implementación de FeedbackRepository (usable con pool o tx).
type FeedbackRepo struct {
	q Querier
}

// NewFeedbackRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFeedbackRepository(q Querier) *FeedbackRepo {
	return &FeedbackRepo{q: q}
}

// Create persiste una entrada del dev log.
func (r *FeedbackRepo) Create(fb *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		fb.ID, fb.UserID, fb.Subject, fb.Message, fb.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// List lista el dev log con el username del autor, lo más reciente primero.
func (r *FeedbackRepo) List(limit, offset int) ([]*repository.FeedbackWithAuthor, error) {
	query := `
		SELECT f.id, f.user_id, f.subject, f.message, f.created_at, u.username
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()
	var list []*repository.FeedbackWithAuthor
	for rows.Next() {
		var f repository.FeedbackWithAuthor
		if err := rows.Scan(
			&f.Feedback.ID, &f.Feedback.UserID, &f.Feedback.Subject, &f.Feedback.Message,
			&f.Feedback.CreatedAt, &f.Username,
		); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
