package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/pkg/validation"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"first_name" validate:"required"`
	Note     string `json:"note"`
}

func TestStruct_ReportaTodosLosCampos(t *testing.T) {
	err := validation.Struct(signup{Password: "corta"})
	require.Error(t, err)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)

	byField := map[string]validation.FieldError{}
	for _, f := range verr.Fields {
		byField[f.Field] = f
	}
	assert.Equal(t, "required", byField["email"].Rule)
	assert.Equal(t, "min", byField["password"].Rule)
	assert.Equal(t, "8", byField["password"].Param)
	assert.Equal(t, "required", byField["first_name"].Rule)
	assert.Contains(t, verr.Error(), "email")
}

func TestStruct_Valido(t *testing.T) {
	err := validation.Struct(signup{Email: "a@b.co", Password: "12345678", Name: "Ana"})
	assert.NoError(t, err)
}
