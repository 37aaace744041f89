package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuariosUseCase administración de cuentas de acceso. El borde HTTP reserva
// estas operaciones al administrador; aquí además la cuenta ADMIN y la propia
// cuenta del actor quedan fuera del alcance de activar/desactivar.
type UsuariosUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuariosUseCase construye el caso de uso.
func NewUsuariosUseCase(repo repository.UsuarioRepository) *UsuariosUseCase {
	return &UsuariosUseCase{repo: repo}
}

// CrearOperador da de alta una cuenta OPERADOR activa con la contraseña
// hasheada con bcrypt.
func (uc *UsuariosUseCase) CrearOperador(ctx context.Context, username, password string) (*entity.Usuario, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, domain.Validacionf("el usuario debe tener al menos 3 caracteres")
	}
	if len(password) < 6 {
		return nil, domain.Validacionf("la contraseña debe tener al menos 6 caracteres")
	}

	dup, err := uc.repo.ExistsUsername(username)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, domain.Duplicadof("el nombre de usuario ya existe")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &entity.Usuario{
		Username:      username,
		PassHash:      string(hash),
		Rol:           entity.RolOperador,
		Activo:        true,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Crear(u); err != nil {
		return nil, err
	}
	return u, nil
}

// PorID devuelve una cuenta o ErrNoEncontrado.
func (uc *UsuariosUseCase) PorID(ctx context.Context, id int64) (*entity.Usuario, error) {
	u, err := uc.repo.PorID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoEncontrado
	}
	return u, nil
}

// Listar devuelve todas las cuentas ordenadas por nombre de usuario.
func (uc *UsuariosUseCase) Listar(ctx context.Context) ([]entity.Usuario, error) {
	return uc.repo.Listar()
}

// SetActivo activa o desactiva una cuenta. No se puede tocar la cuenta ADMIN
// ni la propia cuenta del actor; repetir el estado actual es un no-op.
func (uc *UsuariosUseCase) SetActivo(ctx context.Context, actorID, id int64, activo bool) error {
	u, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}
	if u.Rol == entity.RolAdmin {
		return domain.Validacionf("no se puede cambiar el estado del administrador")
	}
	if u.ID == actorID {
		return domain.Validacionf("no puedes cambiar el estado de tu propia cuenta")
	}
	if u.Activo == activo {
		return nil
	}
	u.Activo = activo
	u.ActualizadoEn = time.Now()
	return uc.repo.Actualizar(u)
}

// CambiarPassword reemplaza la contraseña de una cuenta, esté activa o no.
func (uc *UsuariosUseCase) CambiarPassword(ctx context.Context, id int64, nueva string) error {
	if len(nueva) < 6 {
		return domain.Validacionf("la contraseña debe tener al menos 6 caracteres")
	}
	u, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PassHash = string(hash)
	u.ActualizadoEn = time.Now()
	return uc.repo.Actualizar(u)
}
