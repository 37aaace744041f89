package entity

import "time"

// Roles de usuario (enum rol_usuario en la base).
const (
	RolAdmin    = "ADMIN"
	RolOperador = "OPERADOR"
)

// Usuario cuenta de acceso al sistema.
type Usuario struct {
	ID            int64
	Username      string
	PassHash      string
	Rol           string
	Activo        bool
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
