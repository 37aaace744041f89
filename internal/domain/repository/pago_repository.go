package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
)

// PagoRepository define el puerto de persistencia para pagos. Los pagos viven
// en dos tablas (pago_cliente y pago_proveedor); TipoPorID resuelve a cuál
// pertenece un id antes de modificar o eliminar.
type PagoRepository interface {
	InsertPagoCliente(clienteID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error)
	InsertPagoProveedor(proveedorID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error)
	UpdatePagoCliente(id, clienteID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error)
	UpdatePagoProveedor(id, proveedorID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error)
	DeletePagoCliente(id int64) error
	DeletePagoProveedor(id int64) error

	// TipoPorID devuelve CLIENTE o PROVEEDOR según la tabla que contiene el id,
	// o "" si no existe en ninguna.
	TipoPorID(id int64) (string, error)

	// MetodoLabels carga las etiquetas del enum metodo_pago desde el catálogo
	// de la base (pg_enum), en su orden declarado.
	MetodoLabels() ([]string, error)

	ObtenerCabecera(id int64) (*entity.PagoCabecera, error)
	Buscar(desde, hasta *time.Time, refNombre, tipo string) ([]entity.PagoListado, error)
}
