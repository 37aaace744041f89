package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitaTildes descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// Equivalente en Go al f_unaccent que usa la base de datos.
var quitaTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNombre devuelve la forma canónica de un nombre para comparaciones
// de unicidad: sin espacios en los extremos, sin tildes y en minúsculas.
// "José " y "jose" normalizan al mismo valor.
func NormalizarNombre(nombre string) string {
	s := strings.TrimSpace(nombre)
	if out, _, err := transform.String(quitaTildes, s); err == nil {
		s = out
	}
	return strings.ToLower(s)
}

// NormalizarTelefono convierte el teléfono de formulario a su forma persistida:
// nil cuando viene vacío, recortado cuando no.
func NormalizarTelefono(telefono string) *string {
	t := strings.TrimSpace(telefono)
	if t == "" {
		return nil
	}
	return &t
}
