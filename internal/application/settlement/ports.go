package settlement

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

// PaymentConfirmation is the oracle's verdict on one external payment.
type PaymentConfirmation struct {
	Reference string
	Succeeded bool
}

// PaymentOracle is the external, trusted system confirming that funds were
// captured. Confirm looks a payment up by its reference id.
type PaymentOracle interface {
	Confirm(ctx context.Context, reference string) (*PaymentConfirmation, error)
}

// TxRunner executes fn inside one database transaction, with repositories
// bound to that transaction. The settlement engine uses it so the authoritative
// price read and the sale insert commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
	) error) error
}
