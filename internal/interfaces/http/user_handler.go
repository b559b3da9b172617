package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// UserHandler perfil, listados de compradores/vendedores y baja de cuenta.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Profile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListBuyers godoc
// @Summary      Listar compradores
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.BuyerListResponse
// @Router       /buyers [get]
func (h *UserHandler) ListBuyers(c *fiber.Ctx) error {
	out, err := h.uc.ListBuyers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListSellers godoc
// @Summary      Listar vendedores
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.SellerListResponse
// @Router       /sellers [get]
func (h *UserHandler) ListSellers(c *fiber.Ctx) error {
	out, err := h.uc.ListSellers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar la propia cuenta
// @Description  Borra el usuario junto con su comprador, vendedor y carrito.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteAccount(c.UserContext(), userID, id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Msg: "La cuenta fue eliminada"})
}
