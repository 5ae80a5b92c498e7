// Package pdf renders sale receipts with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marketplace name        │  Receipt id + date       │
//	│  ───────────────────────────────────────────────────────── │
//	│  SELLER: name + email                                       │
//	│  BUYER: email                                               │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Product | Amount                                    │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: Sale / Platform fee / Seller earnings              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 80, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator renders a settled sale as a downloadable PDF receipt.
type ReceiptGenerator struct {
	appName string
}

// NewReceiptGenerator builds the generator. appName heads every receipt.
func NewReceiptGenerator(appName string) *ReceiptGenerator {
	return &ReceiptGenerator{appName: appName}
}

// GenerateSaleReceipt renders the receipt and returns its bytes.
func (g *ReceiptGenerator) GenerateSaleReceipt(_ context.Context, sale *entity.Sale, seller *entity.Seller) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sale Receipt", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(sale, seller))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(itemHeaderRow())
	m.AddRows(itemRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marketplace name on the left, receipt id and date on the right.
func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Marketplace sale receipt", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Date: "+sale.SaleDate.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 12,
			}),
		),
	)
}

// partiesRow: seller and buyer identification.
func partiesRow(sale *entity.Sale, seller *entity.Seller) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("SELLER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(seller.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(seller.Email, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("BUYER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.BuyerEmail, props.Text{Size: 9, Top: 6}),
		),
	)
}

func itemHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("Product", props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2, Left: 1,
		})),
		col.New(3).Add(text.New("Amount", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

func itemRow(sale *entity.Sale) core.Row {
	return row.New(7).Add(
		col.New(9).Add(text.New(sale.ProductName, props.Text{
			Size: 8, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New("$"+sale.SaleAmount.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// totalsRow: the commission split, seller earnings highlighted.
func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string, isLabel bool) core.Component {
		p := props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		}
		if isLabel {
			p.Right = 2
		}
		return text.New(s, p)
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Sale amount:"),
			label("Platform fee (10%):"),
			grand("Seller earnings:", true),
		),
		col.New(4).Add(
			value("$"+sale.SaleAmount.StringFixed(2)),
			value("$"+sale.CommissionAmount.StringFixed(2)),
			grand("$"+sale.SellerAmount.StringFixed(2), false),
		),
	)
}

func footerRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Payment reference: "+sale.PaymentReference, props.Text{
			Size: 7, Color: colorGray, Top: 3,
		}),
		text.New("Keep this receipt as proof of sale.", props.Text{
			Size: 7, Color: colorGray, Top: 7,
		}),
	))
}
