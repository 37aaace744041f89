package repository

import "github.com/softfruver/fruver-ledger/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (login y
// administración de cuentas).
type UsuarioRepository interface {
	PorUsername(username string) (*entity.Usuario, error)
	PorID(id int64) (*entity.Usuario, error)
	ExistsUsername(username string) (bool, error)
	Listar() ([]entity.Usuario, error)
	Crear(u *entity.Usuario) error
	Actualizar(u *entity.Usuario) error
}
