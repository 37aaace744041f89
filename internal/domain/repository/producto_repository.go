package repository

import "github.com/softfruver/fruver-ledger/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
// Stock es de solo lectura aquí: lo mantienen los triggers de la base.
type ProductoRepository interface {
	Crear(p *entity.Producto) error
	PorID(id int64) (*entity.Producto, error)
	Actualizar(p *entity.Producto) error
	ExistsNombreNormalizado(nombre string) (bool, error)
	Listar(archivados bool, q string) ([]entity.Producto, error)
	Opciones() ([]entity.Opcion, error)
}
