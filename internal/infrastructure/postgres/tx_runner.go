package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tienda/cotizaciones-api/internal/application/usecase"
	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCliente inicia una transacción, ejecuta fn con el repo de clientes atado
// a la tx y hace Commit o Rollback. Cubre el pre-chequeo de email + insert.
func (r *TxRunner) RunCliente(ctx context.Context, fn func(clienteRepo repository.ClienteRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClienteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCotizacion inicia una transacción con los repos de cliente y cotización
// (lookup del dueño + insert de la cotización sin estado parcial).
func (r *TxRunner) RunCotizacion(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	cotizacionRepo repository.CotizacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClienteRepository(tx), NewCotizacionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCotizacionLectura como RunCotizacion pero en una transacción de solo
// lectura: el conteo y la página de un listado ven el mismo snapshot aunque
// haya inserts concurrentes.
func (r *TxRunner) RunCotizacionLectura(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	cotizacionRepo repository.CotizacionRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClienteRepository(tx), NewCotizacionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
