package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/web-dev-boy/Nexteria/internal/application/catalog"
	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/storage"
)

// ProductHandler seller-authenticated product operations.
type ProductHandler struct {
	uc     *catalog.CatalogUseCase
	images *storage.LocalImageStore
}

// NewProductHandler builds the product handler.
func NewProductHandler(uc *catalog.CatalogUseCase, images *storage.LocalImageStore) *ProductHandler {
	return &ProductHandler{uc: uc, images: images}
}

// Create godoc
// @Summary      Create a product listing
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "product name"
// @Param        description  formData  string  true   "product description"
// @Param        price        formData  number  true   "price, 0.01-99999.99"
// @Param        category_id  formData  int     false  "category id"
// @Param        image        formData  file    false  "product image (jpeg/png/gif)"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in := dto.CreateProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price must be a number"})
	}
	in.Price = price

	if raw := c.FormValue("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category_id must be numeric"})
		}
		in.CategoryID = &id
	}

	// Image is optional; when present it is validated and stored before the
	// use case runs.
	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, err := h.images.Save(file)
		if err != nil {
			return fail(c, err)
		}
		in.ImageURL = url
	}

	out, err := h.uc.CreateProduct(c.UserContext(), GetSellerID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mine godoc
// @Summary      List the authenticated seller's products
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/seller/products [get]
func (h *ProductHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.ListBySeller(c.UserContext(), GetSellerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
