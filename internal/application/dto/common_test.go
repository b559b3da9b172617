package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

func TestInt64_AceptaNumeroYString(t *testing.T) {
	var in struct {
		A dto.Int64  `json:"a"`
		B dto.Int64  `json:"b"`
		C dto.Int64  `json:"c"`
		D *dto.Int64 `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":2,"b":" 4 ","c":null,"d":"0"}`), &in))
	assert.Equal(t, dto.Int64(2), in.A)
	assert.Equal(t, dto.Int64(4), in.B)
	assert.Equal(t, dto.Int64(0), in.C)
	require.NotNil(t, in.D)
	assert.Equal(t, dto.Int64(0), *in.D)
}

func TestInt64_RechazaTexto(t *testing.T) {
	var in struct {
		A dto.Int64 `json:"a"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"a":"dos"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1.5}`), &in))
}
