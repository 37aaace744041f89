package repository

import (
	"time"

	"github.com/softfruver/fruver-ledger/internal/domain/entity"
)

// CompraRepository define el puerto de persistencia para Compra y sus ítems.
type CompraRepository interface {
	InsertCabecera(proveedorID int64, fecha time.Time) (int64, error)
	UpdateCabecera(compraID, proveedorID int64, fecha time.Time) (int64, error)
	InsertItems(compraID int64, items []entity.CompraItem) error
	DeleteItems(compraID int64) (int64, error)
	DeleteCabecera(compraID int64) error

	ObtenerCabecera(compraID int64) (*entity.CompraCabecera, error)
	ObtenerDetalle(compraID int64) ([]entity.CompraDetalleItem, error)
	Buscar(desde, hasta *time.Time, proveedorNombre string) ([]entity.CompraListado, error)
}
