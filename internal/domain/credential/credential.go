// Package credential implementa el hash salado de contraseñas: bcrypt sobre
// la concatenación contraseña + sal, con una sal aleatoria por usuario.
package credential

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SaltBytes bytes aleatorios de la sal (se guarda en hex: 32 caracteres).
const SaltBytes = 16

// MaxPasswordLen longitud máxima de la contraseña en bytes: bcrypt solo
// considera 72 bytes y la sal ocupa 32.
const MaxPasswordLen = 72 - 2*SaltBytes

// ErrPasswordTooLong la contraseña más la sal supera el límite de bcrypt.
var ErrPasswordTooLong = errors.New("credential: contraseña demasiado larga")

// Cost costo de bcrypt. Los tests lo bajan a bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

// NewSalt genera una sal nueva codificada en hex.
func NewSalt() (string, error) {
	b := make([]byte, SaltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("credential: generar sal: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hash calcula bcrypt(password + salt).
func Hash(password, salt string) (string, error) {
	salted := password + salt
	if len(salted) > 72 {
		return "", ErrPasswordTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(salted), Cost)
	if err != nil {
		return "", fmt.Errorf("credential: hash: %w", err)
	}
	return string(h), nil
}

// Check compara candidate + salt contra el hash almacenado.
func Check(hash, salt, candidate string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate+salt)) == nil
}
