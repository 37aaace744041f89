package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemDocumentoRequest fila cruda de ítem tal como llega del formulario.
// Los campos son punteros porque las filas pueden venir incompletas: la
// sanitización del servicio descarta las inválidas en vez de rechazar todo.
type ItemDocumentoRequest struct {
	ProductoID *int64           `json:"producto_id"`
	CantidadKg *decimal.Decimal `json:"cantidad_kg"`
	PrecioUnit *decimal.Decimal `json:"precio_unit"`
}

// RegistrarVentaRequest cuerpo de POST /api/ventas.
type RegistrarVentaRequest struct {
	ClienteID int64                  `json:"cliente_id"`
	Fecha     string                 `json:"fecha"` // YYYY-MM-DD
	EsCredito bool                   `json:"es_credito"`
	Items     []ItemDocumentoRequest `json:"items"`
}

// RegistrarCompraRequest cuerpo de POST /api/compras.
type RegistrarCompraRequest struct {
	ProveedorID int64                  `json:"proveedor_id"`
	Fecha       string                 `json:"fecha"`
	Items       []ItemDocumentoRequest `json:"items"`
}

// RegistrarPagoRequest cuerpo de POST /api/pagos.
type RegistrarPagoRequest struct {
	Tipo   string           `json:"tipo"` // CLIENTE | PROVEEDOR
	RefID  int64            `json:"ref_id"`
	Fecha  string           `json:"fecha"`
	Monto  *decimal.Decimal `json:"monto"`
	Metodo string           `json:"metodo"`
}

// DocumentoCreadoResponse id del documento recién registrado.
type DocumentoCreadoResponse struct {
	ID int64 `json:"id"`
}

// VentaResponse cabecera y detalle de una venta.
type VentaResponse struct {
	ID        int64                 `json:"id"`
	Fecha     string                `json:"fecha"`
	ClienteID int64                 `json:"cliente_id"`
	Cliente   string                `json:"cliente"`
	Total     decimal.Decimal       `json:"total"`
	EsCredito bool                  `json:"es_credito"`
	Items     []ItemDetalleResponse `json:"items"`
}

// CompraResponse cabecera y detalle de una compra.
type CompraResponse struct {
	ID          int64                 `json:"id"`
	Fecha       string                `json:"fecha"`
	ProveedorID int64                 `json:"proveedor_id"`
	Proveedor   string                `json:"proveedor"`
	Total       decimal.Decimal       `json:"total"`
	Items       []ItemDetalleResponse `json:"items"`
}

// ItemDetalleResponse línea de detalle con nombre de producto resuelto.
type ItemDetalleResponse struct {
	ProductoID int64           `json:"producto_id"`
	Producto   string          `json:"producto"`
	CantidadKg decimal.Decimal `json:"cantidad_kg"`
	PrecioUnit decimal.Decimal `json:"precio_unit"`
}

// PagoResponse cabecera de un pago con su contraparte resuelta.
type PagoResponse struct {
	ID        int64           `json:"id"`
	Fecha     string          `json:"fecha"`
	Tipo      string          `json:"tipo"`
	RefID     int64           `json:"ref_id"`
	RefNombre string          `json:"ref_nombre"`
	Monto     decimal.Decimal `json:"monto"`
	Metodo    string          `json:"metodo"`
}

// FechaDocumento parsea la fecha de formulario (YYYY-MM-DD).
func FechaDocumento(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
