package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/canvacrancha/badge-api/internal/application/importing"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

var _ importing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run ejecuta fn con el repo de funcionarios atado a la tx; Commit si fn no falla.
func (r *TxRunner) Run(ctx context.Context, fn func(employees repository.EmployeeRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewEmployeeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
