package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// ClientesUseCase alta, archivo, restauración y modificación de clientes.
//
// La unicidad de nombre (sin tildes ni mayúsculas) y de teléfono entre
// activos se verifica dos veces: el chequeo consultivo de aquí da el mensaje
// amable, y la restricción única de la base es el respaldo real ante una
// carrera; el repositorio traduce su violación al mensaje del campo afectado.
type ClientesUseCase struct {
	repo repository.ClienteRepository
}

// NewClientesUseCase construye el caso de uso.
func NewClientesUseCase(repo repository.ClienteRepository) *ClientesUseCase {
	return &ClientesUseCase{repo: repo}
}

const (
	msgClienteNombreDup   = "ya existe un cliente activo con ese nombre (se ignoran tildes y mayúsculas)"
	msgClienteTelefonoDup = "ya existe un cliente activo con ese número de teléfono"
)

// Crear registra un cliente activo. Nombre en blanco es error de validación.
func (uc *ClientesUseCase) Crear(ctx context.Context, nombre, telefono string) (*entity.Cliente, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.Validacionf("el nombre es obligatorio")
	}

	dup, err := uc.repo.ExistsNombreNormalizado(nombre)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, domain.Duplicadof(msgClienteNombreDup)
	}

	tel := domain.NormalizarTelefono(telefono)
	if tel != nil {
		dup, err := uc.repo.ExistsTelefonoActivo(*tel)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, domain.Duplicadof(msgClienteTelefonoDup)
		}
	}

	now := time.Now()
	c := &entity.Cliente{
		Nombre:        nombre,
		Telefono:      tel,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Crear(c); err != nil {
		// Respaldo ante una carrera: el repo ya tradujo la violación de
		// unicidad al campo afectado (nombre o teléfono), se propaga tal cual.
		return nil, err
	}
	return c, nil
}

// PorID devuelve un cliente o ErrNoEncontrado.
func (uc *ClientesUseCase) PorID(ctx context.Context, id int64) (*entity.Cliente, error) {
	c, err := uc.repo.PorID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNoEncontrado
	}
	return c, nil
}

// Archivar marca el cliente como archivado; si ya lo está, no hace nada.
func (uc *ClientesUseCase) Archivar(ctx context.Context, id int64) error {
	c, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}
	if !c.Activo() {
		return nil
	}
	now := time.Now()
	c.ArchivedAt = &now
	c.ActualizadoEn = now
	return uc.repo.Actualizar(c)
}

// Restaurar vuelve a activar un cliente archivado; si ya está activo, no-op.
func (uc *ClientesUseCase) Restaurar(ctx context.Context, id int64) error {
	c, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}
	if c.Activo() {
		return nil
	}
	c.ArchivedAt = nil
	c.ActualizadoEn = time.Now()
	return uc.repo.Actualizar(c)
}

// Actualizar modifica nombre y teléfono. Si ninguno cambió materialmente
// (nombre comparado sin tildes ni mayúsculas, teléfono normalizado a nil
// cuando viene vacío) no escribe nada y devuelve éxito.
func (uc *ClientesUseCase) Actualizar(ctx context.Context, id int64, nombre, telefono string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return domain.Validacionf("el nombre es obligatorio")
	}
	tel := domain.NormalizarTelefono(telefono)

	c, err := uc.PorID(ctx, id)
	if err != nil {
		return err
	}

	cambioNombre := domain.NormalizarNombre(c.Nombre) != domain.NormalizarNombre(nombre)
	cambioTel := !telefonosIguales(c.Telefono, tel)
	if !cambioNombre && !cambioTel {
		return nil
	}

	if cambioNombre {
		dup, err := uc.repo.ExistsNombreNormalizado(nombre)
		if err != nil {
			return err
		}
		if dup {
			return domain.Duplicadof(msgClienteNombreDup)
		}
	}
	if cambioTel && tel != nil {
		dup, err := uc.repo.ExistsTelefonoActivo(*tel)
		if err != nil {
			return err
		}
		if dup {
			return domain.Duplicadof(msgClienteTelefonoDup)
		}
	}

	c.Nombre = nombre
	c.Telefono = tel
	c.ActualizadoEn = time.Now()
	if err := uc.repo.Actualizar(c); err != nil {
		return err
	}
	return nil
}

// Listar devuelve clientes activos o archivados con filtro por nombre.
func (uc *ClientesUseCase) Listar(ctx context.Context, archivados bool, q string) ([]entity.ClienteListado, error) {
	return uc.repo.Listar(archivados, strings.TrimSpace(q))
}

// Opciones devuelve pares id/nombre de clientes activos para selectores.
func (uc *ClientesUseCase) Opciones(ctx context.Context) ([]entity.Opcion, error) {
	return uc.repo.Opciones()
}

// telefonosIguales compara teléfonos ya normalizados (nil == vacío).
func telefonosIguales(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return strings.TrimSpace(*a) == strings.TrimSpace(*b)
}

// ToEntidadResponse serializa un cliente para la API.
func ToEntidadResponse(id int64, nombre string, telefono *string, archivedAt *time.Time, creado, actualizado time.Time) dto.EntidadResponse {
	return dto.EntidadResponse{
		ID:          id,
		Nombre:      nombre,
		Telefono:    telefono,
		Archivado:   archivedAt != nil,
		CreadoEn:    creado.Format(time.RFC3339),
		Actualizado: actualizado.Format(time.RFC3339),
	}
}
