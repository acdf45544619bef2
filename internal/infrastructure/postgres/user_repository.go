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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx: el registro
// inserta usuario y Profile dentro de la misma transacción).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, is_superuser, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.IsSuperuser, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password_hash, is_superuser, created_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password_hash, is_superuser, created_at
		FROM users WHERE username = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// List lista usuarios con el rol de su Profile (vista administrativa).
// El LEFT JOIN con COALESCE cubre datos legados anteriores al alta transaccional.
func (r *UserRepo) List(limit, offset int) ([]*repository.UserWithRole, error) {
	query := `
		SELECT u.id, u.username, u.email, u.is_superuser, u.created_at,
		       COALESCE(p.role, 'staff')
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*repository.UserWithRole
	for rows.Next() {
		var u repository.UserWithRole
		if err := rows.Scan(&u.User.ID, &u.User.Username, &u.User.Email, &u.User.IsSuperuser, &u.User.CreatedAt, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
