package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// ProductosUseCase alta y ciclo de archivo de productos. El stock no se
// toca desde aquí: lo mantienen los triggers al mover ventas y compras.
type ProductosUseCase struct {
	repo repository.ProductoRepository
}

// NewProductosUseCase construye el caso de uso.
func NewProductosUseCase(repo repository.ProductoRepository) *ProductosUseCase {
	return &ProductosUseCase{repo: repo}
}

const msgProductoNombreDup = "ya existe un producto activo con ese nombre (se ignoran tildes y mayúsculas)"

// Crear registra un producto activo con stock inicial en cero.
func (uc *ProductosUseCase) Crear(ctx context.Context, nombre string) (*entity.Producto, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.Validacionf("el nombre es obligatorio")
	}
	dup, err := uc.repo.ExistsNombreNormalizado(nombre)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, domain.Duplicadof(msgProductoNombreDup)
	}

	now := time.Now()
	p := &entity.Producto{
		Nombre:        nombre,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Crear(p); err != nil {
		if errors.Is(err, domain.ErrDuplicado) {
			return nil, domain.Duplicadof(msgProductoNombreDup)
		}
		return nil, err
	}
	return p, nil
}

// PorID devuelve un producto o ErrNoEncontrado.
func (uc *ProductosUseCase) PorID(ctx context.Context, id int64) (*entity.Producto, error) {
	p, err := uc.repo.PorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return p, nil
}

// Archivar marca el producto como archivado; no-op si ya lo está.
func (uc *ProductosUseCase) Archivar(ctx context.Context, id int64) error {
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

// Restaurar reactiva un producto archivado; no-op si ya está activo.
func (uc *ProductosUseCase) Restaurar(ctx context.Context, id int64) error {
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

// Listar devuelve productos activos o archivados con filtro por nombre.
func (uc *ProductosUseCase) Listar(ctx context.Context, archivados bool, q string) ([]entity.Producto, error) {
	return uc.repo.Listar(archivados, strings.TrimSpace(q))
}

// Opciones devuelve pares id/nombre de productos activos para selectores.
func (uc *ProductosUseCase) Opciones(ctx context.Context) ([]entity.Opcion, error) {
	return uc.repo.Opciones()
}
