package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

var _ repository.BagRepository = (*BagRepo)(nil)

// BagRepo implementación de BagRepository sobre PostgreSQL (usable con pool o tx).
type BagRepo struct {
	q Querier
}

// NewBagRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewBagRepository(q Querier) *BagRepo {
	return &BagRepo{q: q}
}

// Create persiste un bag nuevo.
func (r *BagRepo) Create(bag *entity.Bag) error {
	query := `
		INSERT INTO bags (id, variety, color, gsm, quantity_bales, location, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		bag.ID, bag.Variety, bag.Color, bag.GSM, bag.QuantityBales, bag.Location, bag.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert bag: %w", err)
	}
	return nil
}

// GetByID obtiene un bag por ID.
func (r *BagRepo) GetByID(id string) (*entity.Bag, error) {
	query := `
		SELECT id, variety, color, gsm, quantity_bales, location, last_updated
		FROM bags WHERE id = $1`
	var b entity.Bag
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Variety, &b.Color, &b.GSM, &b.QuantityBales, &b.Location, &b.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bag: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el bag y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: el bloqueo serializa
// colocaciones de órdenes concurrentes sobre el mismo bag.
func (r *BagRepo) GetForUpdate(id string) (*entity.Bag, error) {
	query := `
		SELECT id, variety, color, gsm, quantity_bales, location, last_updated
		FROM bags WHERE id = $1
		FOR UPDATE`
	var b entity.Bag
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Variety, &b.Color, &b.GSM, &b.QuantityBales, &b.Location, &b.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bag for update: %w", err)
	}
	return &b, nil
}

// List lista bags, los más recientemente actualizados primero.
func (r *BagRepo) List(limit, offset int) ([]*entity.Bag, error) {
	query := `
		SELECT id, variety, color, gsm, quantity_bales, location, last_updated
		FROM bags ORDER BY last_updated DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bags: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bag
	for rows.Next() {
		var b entity.Bag
		if err := rows.Scan(&b.ID, &b.Variety, &b.Color, &b.GSM, &b.QuantityBales, &b.Location, &b.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan bag: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables y refresca last_updated.
func (r *BagRepo) Update(bag *entity.Bag) error {
	query := `
		UPDATE bags SET variety = $2, color = $3, gsm = $4, quantity_bales = $5, location = $6, last_updated = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		bag.ID, bag.Variety, bag.Color, bag.GSM, bag.QuantityBales, bag.Location,
	)
	if err != nil {
		return fmt.Errorf("update bag: %w", err)
	}
	return nil
}

// UpdateQuantity fija el stock del bag y refresca last_updated.
// En la colocación de órdenes se llama con la fila ya bloqueada por GetForUpdate.
func (r *BagRepo) UpdateQuantity(id string, quantityBales int) error {
	query := `UPDATE bags SET quantity_bales = $2, last_updated = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantityBales)
	if err != nil {
		return fmt.Errorf("update bag quantity: %w", err)
	}
	return nil
}

// Delete elimina el bag; las órdenes asociadas caen por la FK ON DELETE CASCADE.
func (r *BagRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bag: %w", err)
	}
	return nil
}
