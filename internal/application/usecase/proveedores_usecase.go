package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// ProveedoresUseCase alta, archivo, restauración y modificación de
// proveedores. Mismas reglas de unicidad que clientes: chequeo consultivo
// con mensaje amable más la restricción única de la base como respaldo.
type ProveedoresUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedoresUseCase construye el caso de uso.
func NewProveedoresUseCase(repo repository.ProveedorRepository) *ProveedoresUseCase {
	return &ProveedoresUseCase{repo: repo}
}

const (
	msgProveedorNombreDup   = "ya existe un proveedor activo con ese nombre (se ignoran tildes y mayúsculas)"
	msgProveedorTelefonoDup = "ya existe un proveedor activo con ese teléfono"
)

// Crear registra un proveedor activo.
func (uc *ProveedoresUseCase) Crear(ctx context.Context, nombre, telefono string) (*entity.Proveedor, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.Validacionf("el nombre es obligatorio")
	}

	dup, err := uc.repo.ExistsNombreNormalizado(nombre)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, domain.Duplicadof(msgProveedorNombreDup)
	}

	tel := domain.NormalizarTelefono(telefono)
	if tel != nil {
		dup, err := uc.repo.ExistsTelefonoActivo(*tel)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, domain.Duplicadof(msgProveedorTelefonoDup)
		}
	}

	now := time.Now()
	p := &entity.Proveedor{
		Nombre:        nombre,
		Telefono:      tel,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Crear(p); err != nil {
		// Respaldo ante una carrera: el repo ya tradujo la violación de
		// unicidad al campo afectado, se propaga tal cual.
		return nil, err
	}
	return p, nil
}

// PorID devuelve un proveedor o ErrNoEncontrado.
func (uc *ProveedoresUseCase) PorID(ctx context.Context, id int64) (*entity.Proveedor, error) {
	p, err := uc.repo.PorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return p, nil
}

// Archivar marca el proveedor como archivado; no-op si ya lo está.
func (uc *ProveedoresUseCase) Archivar(ctx context.Context, id int64) error {
	p, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Activo() {
		return nil
	}
	now := time.Now()
	p.ArchivedAt = &now
	p.ActualizadoEn = now
	return uc.repo.Actualizar(p)
}

// Restaurar reactiva un proveedor archivado; no-op si ya está activo.
func (uc *ProveedoresUseCase) Restaurar(ctx context.Context, id int64) error {
	p, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}
	if p.Activo() {
		return nil
	}
	p.ArchivedAt = nil
	p.ActualizadoEn = time.Now()
	return uc.repo.Actualizar(p)
}

// Actualizar modifica nombre y teléfono con la misma regla de no-op y
// revalidación de unicidad que clientes.
func (uc *ProveedoresUseCase) Actualizar(ctx context.Context, id int64, nombre, telefono string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.Validacionf("el nombre es obligatorio")
	}
	tel := domain.NormalizarTelefono(telefono)

	p, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}

	cambioNombre := domain.NormalizarNombre(p.Nombre) != domain.NormalizarNombre(nombre)
	cambioTel := !telefonosIguales(p.Telefono, tel)
	if !cambioNombre && !cambioTel {
		return nil
	}

	if cambioNombre {
		dup, err := uc.repo.ExistsNombreNormalizado(nombre)
		if err != nil {
			return err
		}
		if dup {
			return domain.Duplicadof(msgProveedorNombreDup)
		}
	}
	if cambioTel && tel != nil {
		dup, err := uc.repo.ExistsTelefonoActivo(*tel)
		if err != nil {
			return err
		}
		if dup {
			return domain.Duplicadof(msgProveedorTelefonoDup)
		}
	}

	p.Nombre = nombre
	p.Telefono = tel
	p.ActualizadoEn = time.Now()
	if err := uc.repo.Actualizar(p); err != nil {
		return err
	}
	return nil
}

// Listar devuelve proveedores activos o archivados con filtro por nombre.
func (uc *ProveedoresUseCase) Listar(ctx context.Context, archivados bool, q string) ([]entity.ProveedorListado, error) {
	return uc.repo.Listar(archivados, strings.TrimSpace(q))
}

// Opciones devuelve pares id/nombre de proveedores activos para selectores.
func (uc *ProveedoresUseCase) Opciones(ctx context.Context) ([]entity.Opcion, error) {
	return uc.repo.Opciones()
}
