package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/ledger"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Las compras comparten el saneo y el reemplazo completo con las ventas; aquí
// se cubre lo propio: sin es_credito y contraparte proveedor.

func TestComprasRegistrar_PersisteCabeceraEItemsSaneados(t *testing.T) {
	tx := newFakeTx()
	uc := ledger.NewComprasUseCase(tx, tx.compras)

	items := []dto.ItemDocumentoRequest{
		itemValido(1, "10", "1200"),
		{ProductoID: nil, CantidadKg: ptrDec("5"), PrecioUnit: ptrDec("100")},
	}
	id, err := uc.Registrar(context.Background(), 7, fechaTest(t, "2026-08-20"), items)
	require.NoError(t, err)

	cab, err := tx.compras.ObtenerCabecera(id)
	require.NoError(t, err)
	require.NotNil(t, cab)
	assert.Equal(t, int64(7), cab.ProveedorID)

	detalle, _ := tx.compras.ObtenerDetalle(id)
	require.Len(t, detalle, 1, "la fila sin producto debe descartarse")
	assert.Equal(t, int64(1), detalle[0].ProductoID)
}

func TestComprasRegistrar_SinItemsValidosEsValidacion(t *testing.T) {
	tx := newFakeTx()
	uc := ledger.NewComprasUseCase(tx, tx.compras)

	_, err := uc.Registrar(context.Background(), 7, fechaTest(t, "2026-08-20"), nil)
	assert.True(t, errors.Is(err, domain.ErrValidacion))
	assert.Empty(t, tx.compras.cabeceras)
}

func TestComprasModificar_ReemplazaItemsYActualizaCabecera(t *testing.T) {
	tx := newFakeTx()
	uc := ledger.NewComprasUseCase(tx, tx.compras)

	id, err := uc.Registrar(context.Background(), 7, fechaTest(t, "2026-08-01"),
		[]dto.ItemDocumentoRequest{itemValido(1, "10", "1200"), itemValido(2, "4", "900")})
	require.NoError(t, err)

	err = uc.Modificar(context.Background(), id, 8, fechaTest(t, "2026-08-03"),
		[]dto.ItemDocumentoRequest{itemValido(3, "6", "700")})
	require.NoError(t, err)

	cab, _ := tx.compras.ObtenerCabecera(id)
	assert.Equal(t, int64(8), cab.ProveedorID)
	detalle, _ := tx.compras.ObtenerDetalle(id)
	require.Len(t, detalle, 1)
	assert.Equal(t, int64(3), detalle[0].ProductoID)
	assert.True(t, cab.Total.Equal(decimal.RequireFromString("4200")),
		"total recalculado tras el reemplazo, fue %s", cab.Total)
}

func TestComprasModificar_IDInexistenteEsNoEncontrado(t *testing.T) {
	tx := newFakeTx()
	uc := ledger.NewComprasUseCase(tx, tx.compras)

	err := uc.Modificar(context.Background(), 404, 7, fechaTest(t, "2026-08-01"),
		[]dto.ItemDocumentoRequest{itemValido(1, "1", "100")})
	assert.True(t, errors.Is(err, domain.ErrNoEncontrado))
	assert.Equal(t, 1, tx.rollbacks)
}

func TestComprasEliminar_EsIdempotente(t *testing.T) {
	tx := newFakeTx()
	uc := ledger.NewComprasUseCase(tx, tx.compras)

	id, err := uc.Registrar(context.Background(), 7, fechaTest(t, "2026-08-01"),
		[]dto.ItemDocumentoRequest{itemValido(1, "1", "100")})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), id))
	require.NoError(t, uc.Eliminar(context.Background(), id), "segunda eliminación no es error")
	cab, _ := tx.compras.ObtenerCabecera(id)
	assert.Nil(t, cab)
}
