package credential_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/domain/credential"
)

func init() {
	credential.Cost = bcrypt.MinCost
}

func TestNewSalt_HexDe32Caracteres(t *testing.T) {
	a, err := credential.NewSalt()
	require.NoError(t, err)
	b, err := credential.NewSalt()
	require.NoError(t, err)

	assert.Len(t, a, 2*credential.SaltBytes)
	assert.NotEqual(t, a, b, "cada sal debe ser distinta")
}

func TestHashYCheck(t *testing.T) {
	salt, err := credential.NewSalt()
	require.NoError(t, err)

	for _, pw := range []string{"secreto123", "ñandú-pass", "a", ""} {
		h, err := credential.Hash(pw, salt)
		require.NoError(t, err)
		assert.NotContains(t, h, pw+salt, "el hash no debe contener el texto plano")
		assert.True(t, credential.Check(h, salt, pw), "la misma contraseña debe validar: %q", pw)
		assert.False(t, credential.Check(h, salt, pw+"x"), "otra contraseña no debe validar")
	}
}

func TestCheck_SalDistintaFalla(t *testing.T) {
	h, err := credential.Hash("secreto123", "aaaa")
	require.NoError(t, err)
	assert.False(t, credential.Check(h, "bbbb", "secreto123"))
	assert.False(t, credential.Check("", "aaaa", "secreto123"))
}

func TestHash_ContraseñaDemasiadoLarga(t *testing.T) {
	salt, err := credential.NewSalt()
	require.NoError(t, err)

	_, err = credential.Hash(strings.Repeat("x", credential.MaxPasswordLen), salt)
	assert.NoError(t, err)

	_, err = credential.Hash(strings.Repeat("x", credential.MaxPasswordLen+1), salt)
	assert.ErrorIs(t, err, credential.ErrPasswordTooLong)
}
