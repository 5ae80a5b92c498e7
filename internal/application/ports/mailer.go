package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Mailer sends transactional email. Both calls are best-effort: callers log
// failures and move on, they never propagate them.
type Mailer interface {
	SendWelcome(ctx context.Context, toEmail, sellerName string) error
	SendSaleNotification(ctx context.Context, toEmail, productName, buyerEmail string,
		saleAmount, sellerAmount, commissionAmount decimal.Decimal) error
}
