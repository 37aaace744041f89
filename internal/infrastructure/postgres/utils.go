package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/softfruver/fruver-ledger/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueConstraint devuelve el nombre del índice único violado cuando el
// error es un 23505. Permite distinguir qué campo chocó (nombre vs teléfono)
// en tablas con más de un índice único.
func uniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// dupEntidad traduce una violación de unicidad al mensaje del campo afectado
// según el índice violado. Devuelve nil si el error no es un 23505. Cliente y
// proveedor tienen dos índices únicos (nombre normalizado y teléfono entre
// activos); sin el nombre del índice no se puede saber cuál perdió la carrera.
func dupEntidad(err error, entidad string) error {
	con, ok := uniqueConstraint(err)
	if !ok {
		if isUniqueViolation(err) {
			return domain.Duplicadof("ya existe un %s activo con esos datos", entidad)
		}
		return nil
	}
	switch {
	case strings.Contains(con, "telefono"):
		return domain.Duplicadof("ya existe un %s activo con ese número de teléfono", entidad)
	case strings.Contains(con, "nombre"):
		return domain.Duplicadof("ya existe un %s activo con ese nombre (se ignoran tildes y mayúsculas)", entidad)
	default:
		return domain.Duplicadof("ya existe un %s activo con esos datos", entidad)
	}
}
