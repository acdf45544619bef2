package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Sin Update ni Delete: las órdenes son inmutables y solo desaparecen
// por cascada al borrar su cliente o su bag.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden. created_seq lo asigna la secuencia de la tabla
// y fija el orden de inserción para los listados.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, client_id, bag_id, quantity_ordered, order_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientID, order.BagID, order.QuantityOrdered, order.OrderDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID, con cliente y bag resueltos.
func (r *OrderRepo) GetByID(id string) (*repository.OrderWithRefs, error) {
	query := `
		SELECT o.id, o.client_id, o.bag_id, o.quantity_ordered, o.order_date,
		       c.name, b.variety, b.color, b.gsm
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		JOIN bags    b ON b.id = o.bag_id
		WHERE o.id = $1`
	var o repository.OrderWithRefs
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.Order.ID, &o.Order.ClientID, &o.Order.BagID, &o.Order.QuantityOrdered, &o.Order.OrderDate,
		&o.ClientName, &o.BagVariety, &o.BagColor, &o.BagGSM,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista órdenes con cliente y bag resueltos, por orden de inserción
// descendente (created_seq, no order_date).
func (r *OrderRepo) List(limit, offset int) ([]*repository.OrderWithRefs, error) {
	query := `
		SELECT o.id, o.client_id, o.bag_id, o.quantity_ordered, o.order_date,
		       c.name, b.variety, b.color, b.gsm
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		JOIN bags    b ON b.id = o.bag_id
		ORDER BY o.created_seq DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*repository.OrderWithRefs
	for rows.Next() {
		var o repository.OrderWithRefs
		if err := rows.Scan(
			&o.Order.ID, &o.Order.ClientID, &o.Order.BagID, &o.Order.QuantityOrdered, &o.Order.OrderDate,
			&o.ClientName, &o.BagVariety, &o.BagColor, &o.BagGSM,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
