package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompraItem línea de una compra; misma regla de reemplazo en bloque que VentaItem.
type CompraItem struct {
	ProductoID int64
	CantidadKg decimal.Decimal
	PrecioUnit decimal.Decimal
}

// CompraListado proyección para la lista de compras.
type CompraListado struct {
	ID        int64
	Fecha     time.Time
	Proveedor string
	Productos string
	Total     decimal.Decimal
}

// CompraCabecera proyección de cabecera con el nombre del proveedor resuelto.
type CompraCabecera struct {
	ID          int64
	Fecha       time.Time
	ProveedorID int64
	Proveedor   string
	Total       decimal.Decimal
}

// CompraDetalleItem línea de detalle con el nombre del producto resuelto.
type CompraDetalleItem struct {
	ProductoID int64
	Producto   string
	CantidadKg decimal.Decimal
	PrecioUnit decimal.Decimal
}
