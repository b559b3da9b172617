package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// CartHandler maneja el carrito (productos por comprar) de los compradores.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List godoc
// @Summary      Carrito de un comprador
// @Tags         cart
// @Produce      json
// @Param        buyer_id  path  int  true  "ID del comprador"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /{buyer_id}/products-to-buy [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	buyerID, err := paramID(c, "buyer_id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByBuyer(c.UserContext(), buyerID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Description  buyer_id, product_id y quantity aceptan número o string numérico.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductToBuyRequest  true  "Línea del carrito"
// @Success      201   {object}  dto.ProductToBuyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /add-product [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddProductToBuyRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Add(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductToBuyEnvelope{
		Msg:          "El producto fue agregado al carrito",
		ProductToBuy: *out,
	})
}

// EditQuantity godoc
// @Summary      Cambiar cantidad de una línea del carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID de la línea"
// @Param        body  body  dto.EditQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.ProductToBuyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /edit-product/{id} [patch]
func (h *CartHandler) EditQuantity(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.EditQuantityRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.EditQuantity(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductToBuyEnvelope{
		Msg:          "La cantidad fue actualizada",
		ProductToBuy: *out,
	})
}

// Delete godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product-to-buy/{id} [delete]
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Msg: "El producto fue eliminado del carrito"})
}

// Document godoc
// @Summary      Resumen del carrito en PDF
// @Tags         cart
// @Produce      application/pdf
// @Param        buyer_id  path  int  true  "ID del comprador"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /{buyer_id}/products-to-buy/pdf [get]
func (h *CartHandler) Document(c *fiber.Ctx) error {
	buyerID, err := paramID(c, "buyer_id")
	if err != nil {
		return err
	}
	pdf, filename, err := h.uc.Document(c.UserContext(), buyerID)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
