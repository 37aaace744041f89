package repository

import "github.com/softfruver/fruver-ledger/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
// Los Exists* son chequeos consultivos: la restricción única de la base
// sigue siendo quien garantiza la unicidad ante concurrencia.
type ClienteRepository interface {
	Crear(c *entity.Cliente) error
	PorID(id int64) (*entity.Cliente, error)
	Actualizar(c *entity.Cliente) error
	ExistsNombreNormalizado(nombre string) (bool, error)
	ExistsTelefonoActivo(telefono string) (bool, error)
	// Listar devuelve activos o archivados, con filtro opcional por nombre.
	Listar(archivados bool, q string) ([]entity.ClienteListado, error)
	Opciones() ([]entity.Opcion, error)
}
