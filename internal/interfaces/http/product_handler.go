package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos de una tienda.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ListByStore godoc
// @Summary      Productos de una tienda
// @Tags         products
// @Produce      json
// @Param        store_id  path   int   true   "ID de la tienda"
// @Param        active    query  bool  false  "Solo productos activos"
// @Success      200  {object}  dto.StoreProductsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stores/{store_id}/products [get]
func (h *ProductHandler) ListByStore(c *fiber.Ctx) error {
	storeID, err := paramID(c, "store_id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByStore(c.UserContext(), storeID, c.QueryBool("active", false))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        store_id  path  int                       true  "ID de la tienda"
// @Param        body      body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /stores/{store_id}/new-product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	storeID, err := paramID(c, "store_id")
	if err != nil {
		return err
	}
	var in dto.CreateProductRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), storeID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductCreatedResponse{
		Msg:     "Su producto fue creado satisfactoriamente",
		Product: *out,
	})
}
