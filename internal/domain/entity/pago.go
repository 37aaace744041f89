package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de contraparte de un pago. Son los valores exactos que viajan en los
// formularios y deciden la tabla destino (pago_cliente o pago_proveedor).
const (
	PagoTipoCliente   = "CLIENTE"
	PagoTipoProveedor = "PROVEEDOR"
)

// PagoListado proyección para la lista unificada de pagos de ambas tablas.
// Un pago no tiene ítems: lleva monto y método en la cabecera.
type PagoListado struct {
	ID        int64
	Fecha     time.Time
	Tipo      string
	RefNombre string
	Monto     decimal.Decimal
	Metodo    string
}

// PagoCabecera proyección de cabecera con la contraparte resuelta.
type PagoCabecera struct {
	ID        int64
	Fecha     time.Time
	Tipo      string
	RefID     int64
	RefNombre string
	Monto     decimal.Decimal
	Metodo    string
}
