package dto

import "github.com/shopspring/decimal"

// VentaListadoResponse fila del listado de ventas con los productos agregados.
type VentaListadoResponse struct {
	ID        int64           `json:"id"`
	Fecha     string          `json:"fecha"`
	Cliente   string          `json:"cliente"`
	Productos string          `json:"productos"`
	Total     decimal.Decimal `json:"total"`
	EsCredito bool            `json:"es_credito"`
}

// CompraListadoResponse fila del listado de compras.
type CompraListadoResponse struct {
	ID        int64           `json:"id"`
	Fecha     string          `json:"fecha"`
	Proveedor string          `json:"proveedor"`
	Productos string          `json:"productos"`
	Total     decimal.Decimal `json:"total"`
}

// PagoListadoResponse fila del listado unificado de pagos.
type PagoListadoResponse struct {
	ID        int64           `json:"id"`
	Fecha     string          `json:"fecha"`
	Tipo      string          `json:"tipo"`
	RefNombre string          `json:"ref_nombre"`
	Monto     decimal.Decimal `json:"monto"`
	Metodo    string          `json:"metodo"`
}

// OpcionResponse par id/nombre para selectores.
type OpcionResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoResponse producto con su stock derivado.
type ProductoResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Stock       decimal.Decimal `json:"stock"`
	Archivado   bool            `json:"archivado"`
	CreadoEn    string          `json:"creado_en"`
	Actualizado string          `json:"actualizado_en"`
}

// MetodosResponse etiquetas válidas de método de pago.
type MetodosResponse struct {
	Metodos []string `json:"metodos"`
}
