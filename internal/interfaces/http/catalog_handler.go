package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/web-dev-boy/Nexteria/internal/application/catalog"
	"github.com/web-dev-boy/Nexteria/internal/application/dashboard"
	"github.com/web-dev-boy/Nexteria/internal/application/dto"
)

// CatalogHandler public catalog reads: categories, product search, platform stats.
type CatalogHandler struct {
	catalogUC   *catalog.CatalogUseCase
	dashboardUC *dashboard.DashboardUseCase
}

// NewCatalogHandler builds the public catalog handler.
func NewCatalogHandler(catalogUC *catalog.CatalogUseCase, dashboardUC *dashboard.DashboardUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, dashboardUC: dashboardUC}
}

// ListCategories godoc
// @Summary      List product categories
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListCategories(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      List all products, newest first
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListProducts(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SearchProducts godoc
// @Summary      Search products with filters
// @Tags         catalog
// @Produce      json
// @Param        q          query  string  false  "free-text query"
// @Param        category   query  int     false  "category id"
// @Param        min_price  query  number  false  "minimum price"
// @Param        max_price  query  number  false  "maximum price"
// @Param        sort       query  string  false  "name|price|created_at|updated_at"
// @Param        order      query  string  false  "ASC|DESC"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *CatalogHandler) SearchProducts(c *fiber.Ctx) error {
	var in dto.SearchProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query parameters"})
	}
	out, err := h.catalogUC.SearchProducts(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// PlatformStats godoc
// @Summary      Marketplace-wide totals
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.PlatformStatsResponse
// @Router       /api/stats [get]
func (h *CatalogHandler) PlatformStats(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetPlatformStats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
