package repository

import "github.com/softfruver/fruver-ledger/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Crear(p *entity.Proveedor) error
	PorID(id int64) (*entity.Proveedor, error)
	Actualizar(p *entity.Proveedor) error
	ExistsNombreNormalizado(nombre string) (bool, error)
	ExistsTelefonoActivo(telefono string) (bool, error)
	Listar(archivados bool, q string) ([]entity.ProveedorListado, error)
	Opciones() ([]entity.Opcion, error)
}
