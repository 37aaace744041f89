package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaItem línea de una venta. Pertenece a exactamente una venta y se
// reemplaza en bloque en cada modificación (nunca se parchea ítem a ítem).
type VentaItem struct {
	ProductoID int64
	CantidadKg decimal.Decimal
	PrecioUnit decimal.Decimal
}

// VentaListado proyección para la lista de ventas (productos agregados en texto).
type VentaListado struct {
	ID        int64
	Fecha     time.Time
	Cliente   string
	Productos string
	Total     decimal.Decimal
	EsCredito bool
}

// VentaCabecera proyección de cabecera con el nombre del cliente resuelto.
// Total lo recalculan los triggers de la base a partir de los ítems; el core
// lo inserta en cero y nunca lo toca.
type VentaCabecera struct {
	ID        int64
	Fecha     time.Time
	ClienteID int64
	Cliente   string
	Total     decimal.Decimal
	EsCredito bool
}

// VentaDetalleItem línea de detalle con el nombre del producto resuelto.
type VentaDetalleItem struct {
	ProductoID int64
	Producto   string
	CantidadKg decimal.Decimal
	PrecioUnit decimal.Decimal
}
