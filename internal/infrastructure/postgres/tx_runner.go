package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/catalogo-api/internal/application/catalog"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// Ensure TxRunner implements catalog.TxRunner.
var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Read-committed (el default) basta: ningún lector
// concurrente observa re-punteos parciales del borrado.
func (r *TxRunner) Run(ctx context.Context, fn func(
	catRepo repository.CategoryRepository,
	prodRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	catRepo := NewCategoryRepository(tx)
	prodRepo := NewProductRepository(tx)

	if err := fn(catRepo, prodRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
