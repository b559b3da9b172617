// Package textnorm normaliza texto de entrada antes de persistirlo, para que las
// restricciones únicas no dependan de la forma Unicode ni de espacios sobrantes.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Name recorta espacios, colapsa espacios internos y aplica NFC.
func Name(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// Email recorta espacios y aplica case folding + NFC.
func Email(s string) string {
	return norm.NFC.String(cases.Fold().String(strings.TrimSpace(s)))
}
