package ledger

import (
	"context"
	"time"

	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// ComprasUseCase registro, modificación y eliminación de compras a proveedor.
// Misma mecánica que ventas, sin bandera de crédito.
type ComprasUseCase struct {
	tx         TxRunner
	compraRepo repository.CompraRepository
}

// NewComprasUseCase construye el caso de uso.
func NewComprasUseCase(tx TxRunner, compraRepo repository.CompraRepository) *ComprasUseCase {
	return &ComprasUseCase{tx: tx, compraRepo: compraRepo}
}

func sanearItemsCompra(items []dto.ItemDocumentoRequest) []entity.CompraItem {
	limpios := make([]entity.CompraItem, 0, len(items))
	for _, it := range items {
		if it.ProductoID == nil {
			continue
		}
		if it.CantidadKg == nil || it.CantidadKg.Sign() <= 0 {
			continue
		}
		if it.PrecioUnit == nil || it.PrecioUnit.Sign() < 0 {
			continue
		}
		limpios = append(limpios, entity.CompraItem{
			ProductoID: *it.ProductoID,
			CantidadKg: *it.CantidadKg,
			PrecioUnit: *it.PrecioUnit,
		})
	}
	return limpios
}

// Registrar inserta cabecera e ítems saneados en una transacción y devuelve el id.
func (uc *ComprasUseCase) Registrar(ctx context.Context, proveedorID int64, fecha time.Time, items []dto.ItemDocumentoRequest) (int64, error) {
	limpios := sanearItemsCompra(items)
	if len(limpios) == 0 {
		return 0, domain.Validacionf("la compra debe tener al menos un ítem con cantidad y precio válidos")
	}

	var compraID int64
	err := uc.tx.RunCompras(ctx, func(repo repository.CompraRepository) error {
		id, err := repo.InsertCabecera(proveedorID, fecha)
		if err != nil {
			return err
		}
		if err := repo.InsertItems(id, limpios); err != nil {
			return err
		}
		compraID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return compraID, nil
}

// Modificar reemplaza el documento completo en una transacción; valida antes
// de mutar y devuelve ErrNoEncontrado si la cabecera no existe.
func (uc *ComprasUseCase) Modificar(ctx context.Context, compraID, proveedorID int64, fecha time.Time, items []dto.ItemDocumentoRequest) error {
	limpios := sanearItemsCompra(items)
	if len(limpios) == 0 {
		return domain.Validacionf("la compra debe tener al menos un ítem válido")
	}

	return uc.tx.RunCompras(ctx, func(repo repository.CompraRepository) error {
		n, err := repo.UpdateCabecera(compraID, proveedorID, fecha)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNoEncontrado
		}
		if _, err := repo.DeleteItems(compraID); err != nil {
			return err
		}
		return repo.InsertItems(compraID, limpios)
	})
}

// Eliminar borra ítems y cabecera; idempotente para ids inexistentes.
func (uc *ComprasUseCase) Eliminar(ctx context.Context, compraID int64) error {
	return uc.tx.RunCompras(ctx, func(repo repository.CompraRepository) error {
		if _, err := repo.DeleteItems(compraID); err != nil {
			return err
		}
		return repo.DeleteCabecera(compraID)
	})
}

// Obtener devuelve cabecera y detalle de una compra.
func (uc *ComprasUseCase) Obtener(ctx context.Context, compraID int64) (*dto.CompraResponse, error) {
	cab, err := uc.compraRepo.ObtenerCabecera(compraID)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, domain.ErrNoEncontrado
	}
	detalle, err := uc.compraRepo.ObtenerDetalle(compraID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CompraResponse{
		ID:          cab.ID,
		Fecha:       cab.Fecha.Format("2006-01-02"),
		ProveedorID: cab.ProveedorID,
		Proveedor:   cab.Proveedor,
		Total:       cab.Total,
		Items:       make([]dto.ItemDetalleResponse, 0, len(detalle)),
	}
	for _, d := range detalle {
		resp.Items = append(resp.Items, dto.ItemDetalleResponse{
			ProductoID: d.ProductoID,
			Producto:   d.Producto,
			CantidadKg: d.CantidadKg,
			PrecioUnit: d.PrecioUnit,
		})
	}
	return resp, nil
}

// Buscar lista compras por rango de fechas y nombre de proveedor.
func (uc *ComprasUseCase) Buscar(ctx context.Context, desde, hasta *time.Time, proveedorNombre string) ([]entity.CompraListado, error) {
	return uc.compraRepo.Buscar(desde, hasta, proveedorNombre)
}
