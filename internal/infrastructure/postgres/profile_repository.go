package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación de ProfileRepository (usable con pool o tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste el Profile. user_id es único: un segundo Profile para el
// mismo usuario viola el constraint y se reporta como duplicado.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, role, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.Role, profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el Profile de un usuario.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	query := `
		SELECT user_id, role, created_at
		FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.Role, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
