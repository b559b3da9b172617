package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// AuthHandler maneja registro de compradores y vendedores, y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignupBuyer godoc
// @Summary      Registrar comprador
// @Description  Crea el usuario y su comprador en una sola transacción.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupBuyerRequest  true  "Datos del comprador"
// @Success      201   {object}  dto.SignupBuyerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /signup-buyer [post]
func (h *AuthHandler) SignupBuyer(c *fiber.Ctx) error {
	var in dto.SignupBuyerRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	user, err := h.uc.SignupBuyer(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SignupBuyerResponse{
		Msg:  "El usuario fue creado satisfactoriamente.",
		User: *user,
	})
}

// SignupSeller godoc
// @Summary      Registrar vendedor
// @Description  Crea usuario, vendedor y tienda en una sola transacción.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupSellerRequest  true  "Datos del vendedor y su tienda"
// @Success      201   {object}  dto.SignupSellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /signup-seller [post]
func (h *AuthHandler) SignupSeller(c *fiber.Ctx) error {
	var in dto.SignupSellerRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	account, err := h.uc.SignupSeller(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SignupSellerResponse{
		Msg:      "La cuenta fue creada satisfactoriamente",
		Response: *account,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	// 201: los clientes existentes esperan este status al emitir el token
	return c.Status(fiber.StatusCreated).JSON(out)
}
