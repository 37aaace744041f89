package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente es la contraparte de ventas y pagos de cliente.
// ArchivedAt en nil significa activo; archivar nunca borra el registro.
type Cliente struct {
	ID            int64
	Nombre        string
	Telefono      *string
	ArchivedAt    *time.Time
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// Activo indica si el cliente no está archivado.
func (c *Cliente) Activo() bool { return c.ArchivedAt == nil }

// ClienteListado proyección de listado: incluye el saldo derivado por la
// vista v_saldo_cliente (mantenida por la base de datos, no por este core).
type ClienteListado struct {
	ID         int64
	Nombre     string
	Telefono   *string
	SaldoTotal decimal.Decimal
}
