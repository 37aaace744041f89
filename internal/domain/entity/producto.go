package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario. Stock es un agregado
// derivado que mantienen los triggers de la base al mover venta/compra;
// este core lo lee pero nunca lo escribe.
type Producto struct {
	ID            int64
	Nombre        string
	Stock         decimal.Decimal
	ArchivedAt    *time.Time
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// Activo indica si el producto no está archivado.
func (p *Producto) Activo() bool { return p.ArchivedAt == nil }

// Opcion par id/nombre para selectores de formularios.
type Opcion struct {
	ID     int64
	Nombre string
}
