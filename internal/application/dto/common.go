package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Tienda-api/pkg/validation"
)

// ErrorResponse cuerpo de error HTTP. Errors solo aparece en errores de validación.
type ErrorResponse struct {
	Msg    string                  `json:"msg"`
	Code   string                  `json:"code,omitempty"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// MessageResponse respuesta que solo lleva un mensaje.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Int64 entero que acepta tanto un número JSON como un string numérico ("2"):
// los clientes existentes envían ids y cantidades como strings.
type Int64 int64

// UnmarshalJSON implementa json.Unmarshaler.
func (n *Int64) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("entero inválido: %s", s)
	}
	*n = Int64(v)
	return nil
}
