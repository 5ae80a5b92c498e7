package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/web-dev-boy/Nexteria/internal/application/dashboard"
	"github.com/web-dev-boy/Nexteria/internal/application/inbox"
	"github.com/web-dev-boy/Nexteria/internal/application/sales"
)

// SellerHandler the authenticated seller dashboard: sales, stats, inbox.
type SellerHandler struct {
	salesUC     *sales.SalesUseCase
	inboxUC     *inbox.InboxUseCase
	dashboardUC *dashboard.DashboardUseCase
}

// NewSellerHandler builds the seller dashboard handler.
func NewSellerHandler(salesUC *sales.SalesUseCase, inboxUC *inbox.InboxUseCase, dashboardUC *dashboard.DashboardUseCase) *SellerHandler {
	return &SellerHandler{salesUC: salesUC, inboxUC: inboxUC, dashboardUC: dashboardUC}
}

// Sales godoc
// @Summary      List the seller's settled sales
// @Tags         seller
// @Produce      json
// @Success      200  {object}  dto.SellerSalesListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/seller/sales [get]
func (h *SellerHandler) Sales(c *fiber.Ctx) error {
	out, err := h.salesUC.ListBySeller(c.UserContext(), GetSellerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Seller aggregate figures
// @Tags         seller
// @Produce      json
// @Success      200  {object}  dto.SellerStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/seller/stats [get]
func (h *SellerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSellerStats(c.UserContext(), GetSellerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Seller inbox, newest first
// @Tags         seller
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/seller/notifications [get]
func (h *SellerHandler) Notifications(c *fiber.Ctx) error {
	out, err := h.inboxUC.List(c.UserContext(), GetSellerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// MarkNotificationRead godoc
// @Summary      Mark one notification as read
// @Tags         seller
// @Produce      json
// @Param        id  path  string  true  "notification id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seller/notifications/{id}/read [put]
func (h *SellerHandler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.inboxUC.MarkRead(c.UserContext(), GetSellerID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Receipt godoc
// @Summary      Download the PDF receipt for one sale
// @Tags         seller
// @Produce      application/pdf
// @Param        id  path  string  true  "sale id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seller/sales/{id}/receipt [get]
func (h *SellerHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.salesUC.Receipt(c.UserContext(), GetSellerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="receipt-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}
