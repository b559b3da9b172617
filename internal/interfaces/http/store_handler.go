package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// StoreHandler maneja las peticiones HTTP de tiendas.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Produce      json
// @Success      200  {object}  dto.StoreListResponse
// @Router       /stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetBySeller godoc
// @Summary      Tienda de un vendedor
// @Tags         stores
// @Produce      json
// @Param        seller_id  path  int  true  "ID del vendedor"
// @Success      200  {object}  dto.StoreEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /{seller_id}/store [get]
func (h *StoreHandler) GetBySeller(c *fiber.Ctx) error {
	sellerID, err := paramID(c, "seller_id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetBySeller(c.UserContext(), sellerID)
	if err != nil {
		return err
	}
	return c.JSON(dto.StoreEnvelope{Store: *out})
}

// Create godoc
// @Summary      Crear tienda
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.StoreCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /new-store [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StoreCreatedResponse{
		Msg:   "La tienda fue creada satisfactoriamente",
		Store: *out,
	})
}
