// Package commission implements the platform's commission split (domain service).
package commission

import "github.com/shopspring/decimal"

// Rate is the fixed fraction of each sale retained by the platform (10%).
var Rate = decimal.NewFromFloat(0.10)

// Split divides a sale amount between platform and seller.
// commission = round2(amount * Rate); seller = amount - commission, so the two
// parts always sum back to the amount to two decimal places.
func Split(amount decimal.Decimal) (commissionAmount, sellerAmount decimal.Decimal) {
	commissionAmount = amount.Mul(Rate).Round(2)
	sellerAmount = amount.Sub(commissionAmount)
	return commissionAmount, sellerAmount
}
