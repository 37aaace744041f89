package dto

import "github.com/shopspring/decimal"

// CrearEntidadRequest cuerpo de alta de cliente o proveedor.
type CrearEntidadRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// ActualizarEntidadRequest cuerpo de modificación de cliente o proveedor.
type ActualizarEntidadRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// EntidadResponse cliente o proveedor serializado.
type EntidadResponse struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Telefono    *string `json:"telefono"`
	Archivado   bool    `json:"archivado"`
	CreadoEn    string  `json:"creado_en"`
	Actualizado string  `json:"actualizado_en"`
}

// EntidadListadoResponse fila de listado con saldo derivado.
type EntidadListadoResponse struct {
	ID         int64           `json:"id"`
	Nombre     string          `json:"nombre"`
	Telefono   *string         `json:"telefono"`
	SaldoTotal decimal.Decimal `json:"saldo_total"`
}

// CrearProductoRequest cuerpo de alta de producto.
type CrearProductoRequest struct {
	Nombre string `json:"nombre"`
}
