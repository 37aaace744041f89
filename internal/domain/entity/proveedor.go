package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proveedor es la contraparte de compras y pagos a proveedor.
type Proveedor struct {
	ID            int64
	Nombre        string
	Telefono      *string
	ArchivedAt    *time.Time
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// Activo indica si el proveedor no está archivado.
func (p *Proveedor) Activo() bool { return p.ArchivedAt == nil }

// ProveedorListado proyección de listado con saldo derivado (v_saldo_proveedor).
type ProveedorListado struct {
	ID         int64
	Nombre     string
	Telefono   *string
	SaldoTotal decimal.Decimal
}
