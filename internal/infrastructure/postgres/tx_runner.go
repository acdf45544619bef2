package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ecopack/ecopack-api/internal/application/auth"
	"github.com/ecopack/ecopack-api/internal/application/ledger"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and auth.AuthTxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ auth.AuthTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para la colocación de órdenes: ejecuta fn con los
// repos de bag y orden atados a la tx y hace Commit o Rollback. El SELECT FOR
// UPDATE del bag vive dentro de fn, así que el bloqueo dura hasta el Commit.
func (r *TxRunner) Run(ctx context.Context, fn func(
	bagRepo repository.BagRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBagRepository(tx), NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAuth inicia una transacción para el registro: usuario y Profile se
// insertan juntos o no se inserta ninguno.
func (r *TxRunner) RunAuth(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewProfileRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
