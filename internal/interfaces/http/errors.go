package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/credential"
	"github.com/jhoicas/Tienda-api/pkg/logger"
	"github.com/jhoicas/Tienda-api/pkg/validation"
)

// ErrorHandler traduce los errores de handlers y middlewares a respuestas JSON.
// Los 5xx se registran y no exponen el detalle al cliente.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := errorResponse(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", requestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error interno")
			body.Msg = "error interno del servidor"
		}
		return c.Status(status).JSON(body)
	}
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var verr *validation.Error
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Msg: "datos inválidos", Code: "VALIDATION", Errors: verr.Fields}
	case errors.As(err, &ferr):
		return ferr.Code, dto.ErrorResponse{Msg: ferr.Message, Code: "HTTP_" + strconv.Itoa(ferr.Code)}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Msg: err.Error(), Code: "NOT_FOUND"}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Msg: err.Error(), Code: "DUPLICATE"}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Msg: err.Error(), Code: "INVALID_INPUT"}
	case errors.Is(err, credential.ErrPasswordTooLong):
		return fiber.StatusBadRequest, dto.ErrorResponse{Msg: "la contraseña es demasiado larga", Code: "INVALID_INPUT"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Msg: "Malas credenciales", Code: "INVALID_CREDENTIALS"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Msg: err.Error(), Code: "UNAUTHORIZED"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Msg: err.Error(), Code: "FORBIDDEN"}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Msg: err.Error(), Code: "INTERNAL"}
	}
}

// bind parsea el cuerpo JSON en in y lo valida.
func bind(c *fiber.Ctx, in any) error {
	if err := c.BodyParser(in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	return validation.Struct(in)
}

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" inválido")
	}
	return id, nil
}
