package ledger

import (
	"context"
	"time"

	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// VentasUseCase registro, modificación y eliminación de ventas.
//
// El stock del producto y el saldo del cliente los recalculan los triggers
// de la base al escribir venta_item; este caso de uso nunca los lee ni los
// escribe dentro de la misma llamada. No hay bloqueo optimista: dos
// modificaciones concurrentes de la misma venta compiten al nivel de
// aislamiento de la base (limitación conocida).
type VentasUseCase struct {
	tx        TxRunner
	ventaRepo repository.VentaRepository // lecturas fuera de transacción
}

// NewVentasUseCase construye el caso de uso.
func NewVentasUseCase(tx TxRunner, ventaRepo repository.VentaRepository) *VentasUseCase {
	return &VentasUseCase{tx: tx, ventaRepo: ventaRepo}
}

// sanearItemsVenta descarta filas sin producto, con cantidad nula o <= 0,
// o con precio nulo o < 0. Es un filtro, no un rechazo: una fila malformada
// se ignora en silencio, salvo que no sobreviva ninguna.
func sanearItemsVenta(items []dto.ItemDocumentoRequest) []entity.VentaItem {
	limpios := make([]entity.VentaItem, 0, len(items))
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
		limpios = append(limpios, entity.VentaItem{
			ProductoID: *it.ProductoID,
			CantidadKg: *it.CantidadKg,
			PrecioUnit: *it.PrecioUnit,
		})
	}
	return limpios
}

// Registrar inserta cabecera e ítems saneados como unidad atómica y devuelve
// el id generado. Si tras el saneo no queda ningún ítem válido no se persiste
// nada.
func (uc *VentasUseCase) Registrar(ctx context.Context, clienteID int64, fecha time.Time, esCredito bool, items []dto.ItemDocumentoRequest) (int64, error) {
	limpios := sanearItemsVenta(items)
	if len(limpios) == 0 {
		return 0, domain.Validacionf("la venta debe tener al menos un ítem con cantidad y precio válidos")
	}

	var ventaID int64
	err := uc.tx.RunVentas(ctx, func(repo repository.VentaRepository) error {
		id, err := repo.InsertCabecera(clienteID, fecha, esCredito)
		if err != nil {
			return err
		}
		if err := repo.InsertItems(id, limpios); err != nil {
			return err
		}
		ventaID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ventaID, nil
}

// Modificar reemplaza el documento completo: actualiza la cabecera, borra
// todos los ítems y escribe el nuevo juego saneado en una sola transacción.
// La validación ocurre antes de tocar nada: con ítems vacíos la venta
// existente queda intacta.
func (uc *VentasUseCase) Modificar(ctx context.Context, ventaID, clienteID int64, fecha time.Time, esCredito bool, items []dto.ItemDocumentoRequest) error {
	limpios := sanearItemsVenta(items)
	if len(limpios) == 0 {
		return domain.Validacionf("la venta debe tener al menos un ítem válido")
	}

	return uc.tx.RunVentas(ctx, func(repo repository.VentaRepository) error {
		n, err := repo.UpdateCabecera(ventaID, clienteID, fecha, esCredito)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNoEncontrado
		}
		if _, err := repo.DeleteItems(ventaID); err != nil {
			return err
		}
		return repo.InsertItems(ventaID, limpios)
	})
}

// Eliminar borra ítems y luego cabecera como unidad atómica. Es idempotente:
// un id inexistente no es error.
func (uc *VentasUseCase) Eliminar(ctx context.Context, ventaID int64) error {
	return uc.tx.RunVentas(ctx, func(repo repository.VentaRepository) error {
		if _, err := repo.DeleteItems(ventaID); err != nil {
			return err
		}
		return repo.DeleteCabecera(ventaID)
	})
}

// Obtener devuelve cabecera y detalle de una venta.
func (uc *VentasUseCase) Obtener(ctx context.Context, ventaID int64) (*dto.VentaResponse, error) {
	cab, err := uc.ventaRepo.ObtenerCabecera(ventaID)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, domain.ErrNoEncontrado
	}
	detalle, err := uc.ventaRepo.ObtenerDetalle(ventaID)
	if err != nil {
		return nil, err
	}
	resp := &dto.VentaResponse{
		ID:        cab.ID,
		Fecha:     cab.Fecha.Format("2006-01-02"),
		ClienteID: cab.ClienteID,
		Cliente:   cab.Cliente,
		Total:     cab.Total,
		EsCredito: cab.EsCredito,
		Items:     make([]dto.ItemDetalleResponse, 0, len(detalle)),
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

// Buscar lista ventas por rango de fechas y nombre de cliente.
func (uc *VentasUseCase) Buscar(ctx context.Context, desde, hasta *time.Time, clienteNombre string) ([]entity.VentaListado, error) {
	return uc.ventaRepo.Buscar(desde, hasta, clienteNombre)
}
