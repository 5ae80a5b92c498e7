package ports

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

// ReceiptGenerator renders a settled sale as a downloadable document.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, seller *entity.Seller) ([]byte, error)
}
