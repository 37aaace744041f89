package repository

import (
	"time"

	"github.com/softfruver/fruver-ledger/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta y sus ítems.
// UpdateCabecera y DeleteItems devuelven filas afectadas: el servicio las usa
// para distinguir "no existe" de "actualizó", no solo el tipo de error.
type VentaRepository interface {
	// InsertCabecera inserta la cabecera con total en cero y devuelve el id
	// generado. Los triggers recalculan el total al insertar los ítems.
	InsertCabecera(clienteID int64, fecha time.Time, esCredito bool) (int64, error)
	UpdateCabecera(ventaID, clienteID int64, fecha time.Time, esCredito bool) (int64, error)
	InsertItems(ventaID int64, items []entity.VentaItem) error
	DeleteItems(ventaID int64) (int64, error)
	DeleteCabecera(ventaID int64) error

	ObtenerCabecera(ventaID int64) (*entity.VentaCabecera, error)
	ObtenerDetalle(ventaID int64) ([]entity.VentaDetalleItem, error)
	Buscar(desde, hasta *time.Time, clienteNombre string) ([]entity.VentaListado, error)
}
