package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mesharis-cell/platform-api/internal/application/commercial"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que TxRunner implementa commercial.TxRunner.
var _ commercial.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCommercial inicia una transacción, ejecuta fn con los repositorios
// comerciales atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunCommercial(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	requestRepo repository.ServiceRequestRepository,
	pricingRepo repository.PricingRepository,
	lineItemRepo repository.LineItemRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	requestRepo := NewServiceRequestRepository(tx)
	pricingRepo := NewPricingRepository(tx)
	lineItemRepo := NewLineItemRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(orderRepo, requestRepo, pricingRepo, lineItemRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
