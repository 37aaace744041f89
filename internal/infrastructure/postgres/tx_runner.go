package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/softfruver/fruver-ledger/internal/application/ledger"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Cada Run* entrega al callback un repositorio atado a la tx; si el callback
// retorna error se hace Rollback y nada queda visible.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVentas ejecuta fn con un VentaRepository transaccional.
func (r *TxRunner) RunVentas(ctx context.Context, fn func(repo repository.VentaRepository) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewVentaRepository(q))
	})
}

// RunCompras ejecuta fn con un CompraRepository transaccional.
func (r *TxRunner) RunCompras(ctx context.Context, fn func(repo repository.CompraRepository) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewCompraRepository(q))
	})
}

// RunPagos ejecuta fn con un PagoRepository transaccional.
func (r *TxRunner) RunPagos(ctx context.Context, fn func(repo repository.PagoRepository) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewPagoRepository(q))
	})
}
