package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// PagosUseCase registro, modificación y eliminación de pagos. Un pago no
// tiene ítems: vive en pago_cliente o pago_proveedor según su tipo, y los
// triggers de la base descuentan el saldo de la contraparte al escribirlo.
type PagosUseCase struct {
	tx       TxRunner
	pagoRepo repository.PagoRepository
	catalogo *MetodoCatalogo
}

// NewPagosUseCase construye el caso de uso.
func NewPagosUseCase(tx TxRunner, pagoRepo repository.PagoRepository, catalogo *MetodoCatalogo) *PagosUseCase {
	return &PagosUseCase{tx: tx, pagoRepo: pagoRepo, catalogo: catalogo}
}

// normalizarTipo valida el tipo de contraparte contra los dos valores exactos.
func normalizarTipo(tipo string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(tipo))
	switch t {
	case entity.PagoTipoCliente, entity.PagoTipoProveedor:
		return t, nil
	default:
		return "", domain.Validacionf("tipo inválido: %q", tipo)
	}
}

func (uc *PagosUseCase) validar(refID int64, fecha time.Time, monto *decimal.Decimal, metodo string) (string, error) {
	if refID == 0 {
		return "", domain.Validacionf("debe seleccionar cliente o proveedor")
	}
	if fecha.IsZero() {
		return "", domain.Validacionf("la fecha es obligatoria")
	}
	if monto == nil || monto.Sign() <= 0 {
		return "", domain.Validacionf("el monto debe ser mayor a 0")
	}
	return uc.catalogo.Normalizar(metodo)
}

// Registrar inserta el pago en la tabla que corresponde al tipo y devuelve el id.
func (uc *PagosUseCase) Registrar(ctx context.Context, tipo string, refID int64, fecha time.Time, monto *decimal.Decimal, metodo string) (int64, error) {
	metodoExacto, err := uc.validar(refID, fecha, monto, metodo)
	if err != nil {
		return 0, err
	}
	t, err := normalizarTipo(tipo)
	if err != nil {
		return 0, err
	}

	var pagoID int64
	err = uc.tx.RunPagos(ctx, func(repo repository.PagoRepository) error {
		var id int64
		var errIns error
		if t == entity.PagoTipoCliente {
			id, errIns = repo.InsertPagoCliente(refID, fecha, *monto, metodoExacto)
		} else {
			id, errIns = repo.InsertPagoProveedor(refID, fecha, *monto, metodoExacto)
		}
		if errIns != nil {
			return errIns
		}
		pagoID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pagoID, nil
}

// Modificar actualiza el pago en la tabla que indica el tipo. Cero filas
// afectadas significa que el id no existe en esa tabla.
func (uc *PagosUseCase) Modificar(ctx context.Context, id int64, tipo string, refID int64, fecha time.Time, monto *decimal.Decimal, metodo string) error {
	if id == 0 {
		return domain.Validacionf("id de pago requerido")
	}
	metodoExacto, err := uc.validar(refID, fecha, monto, metodo)
	if err != nil {
		return err
	}
	t, err := normalizarTipo(tipo)
	if err != nil {
		return err
	}

	return uc.tx.RunPagos(ctx, func(repo repository.PagoRepository) error {
		var n int64
		var errUpd error
		if t == entity.PagoTipoCliente {
			n, errUpd = repo.UpdatePagoCliente(id, refID, fecha, *monto, metodoExacto)
		} else {
			n, errUpd = repo.UpdatePagoProveedor(id, refID, fecha, *monto, metodoExacto)
		}
		if errUpd != nil {
			return errUpd
		}
		if n == 0 {
			return domain.ErrNoEncontrado
		}
		return nil
	})
}

// Eliminar resuelve primero en qué tabla vive el pago y borra solo de esa.
// Si el id no aparece en ninguna, ErrNoEncontrado.
func (uc *PagosUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.tx.RunPagos(ctx, func(repo repository.PagoRepository) error {
		tipo, err := repo.TipoPorID(id)
		if err != nil {
			return err
		}
		switch tipo {
		case entity.PagoTipoCliente:
			return repo.DeletePagoCliente(id)
		case entity.PagoTipoProveedor:
			return repo.DeletePagoProveedor(id)
		default:
			return domain.ErrNoEncontrado
		}
	})
}

// Obtener devuelve la cabecera de un pago con su contraparte resuelta.
func (uc *PagosUseCase) Obtener(ctx context.Context, id int64) (*dto.PagoResponse, error) {
	cab, err := uc.pagoRepo.ObtenerCabecera(id)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, domain.ErrNoEncontrado
	}
	return &dto.PagoResponse{
		ID:        cab.ID,
		Fecha:     cab.Fecha.Format("2006-01-02"),
		Tipo:      cab.Tipo,
		RefID:     cab.RefID,
		RefNombre: cab.RefNombre,
		Monto:     cab.Monto,
		Metodo:    cab.Metodo,
	}, nil
}

// Buscar lista pagos de ambas tablas por rango de fechas, contraparte y tipo.
func (uc *PagosUseCase) Buscar(ctx context.Context, desde, hasta *time.Time, refNombre, tipo string) ([]entity.PagoListado, error) {
	return uc.pagoRepo.Buscar(desde, hasta, refNombre, tipo)
}
