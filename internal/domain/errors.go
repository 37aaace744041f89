package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidacion   = errors.New("entrada inválida")
	ErrDuplicado    = errors.New("recurso duplicado")
	ErrNoEncontrado = errors.New("recurso no encontrado")
	ErrNoAutorizado = errors.New("no autorizado")
)

// Validacionf construye un error de validación con mensaje legible para el usuario.
// errors.Is(err, ErrValidacion) sigue funcionando sobre el resultado.
func Validacionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidacion, fmt.Sprintf(format, args...))
}

// Duplicadof construye un error de duplicado con el mensaje que ve el usuario.
func Duplicadof(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDuplicado, fmt.Sprintf(format, args...))
}
