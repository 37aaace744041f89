package ledger_test

import (
	"errors"
	"testing"

	"github.com/softfruver/fruver-ledger/internal/application/ledger"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetodoCatalogo_ConjuntoPorDefecto(t *testing.T) {
	c := ledger.NewMetodoCatalogo()
	assert.Equal(t, []string{"EFECTIVO", "TRANSFERENCIA"}, c.Etiquetas())
}

func TestMetodoCatalogo_NormalizarEsInsensibleAMayusculas(t *testing.T) {
	c := ledger.NewMetodoCatalogo()

	for _, raw := range []string{"efectivo", "EFECTIVO", " Efectivo "} {
		got, err := c.Normalizar(raw)
		require.NoError(t, err, "entrada %q", raw)
		assert.Equal(t, "EFECTIVO", got, "siempre devuelve la etiqueta canónica")
	}
}

func TestMetodoCatalogo_ValorDesconocidoEsValidacion(t *testing.T) {
	c := ledger.NewMetodoCatalogo()
	_, err := c.Normalizar("CHEQUE")
	assert.True(t, errors.Is(err, domain.ErrValidacion))
	assert.Contains(t, err.Error(), "EFECTIVO", "el mensaje lista los valores permitidos")

	_, err = c.Normalizar("")
	assert.True(t, errors.Is(err, domain.ErrValidacion), "vacío también es inválido")
}

func TestMetodoCatalogo_CargarReemplazaDesdeLaBase(t *testing.T) {
	c := ledger.NewMetodoCatalogo()
	repo := newFakePagoRepo()
	repo.metodoLabels = []string{"EFECTIVO", "TRANSFERENCIA", "NEQUI"}

	require.NoError(t, c.Cargar(repo))
	assert.Equal(t, []string{"EFECTIVO", "TRANSFERENCIA", "NEQUI"}, c.Etiquetas())

	got, err := c.Normalizar("nequi")
	require.NoError(t, err)
	assert.Equal(t, "NEQUI", got)
}

func TestMetodoCatalogo_CargarVacioConservaVigente(t *testing.T) {
	c := ledger.NewMetodoCatalogo()
	repo := newFakePagoRepo() // sin etiquetas configuradas

	require.NoError(t, c.Cargar(repo))
	assert.Equal(t, []string{"EFECTIVO", "TRANSFERENCIA"}, c.Etiquetas(),
		"una carga vacía no debe dejar el catálogo inutilizable")
}

func TestMetodoCatalogo_CargarConErrorPropagaYConserva(t *testing.T) {
	c := ledger.NewMetodoCatalogo()
	repo := newFakePagoRepo()
	repo.metodoErr = errors.New("conexión rechazada")

	assert.Error(t, c.Cargar(repo))
	assert.Equal(t, []string{"EFECTIVO", "TRANSFERENCIA"}, c.Etiquetas())
}

func TestMetodoCatalogo_InvalidarVuelveAlEstatico(t *testing.T) {
	c := ledger.NewMetodoCatalogo()
	repo := newFakePagoRepo()
	repo.metodoLabels = []string{"NEQUI"}
	require.NoError(t, c.Cargar(repo))
	require.Equal(t, []string{"NEQUI"}, c.Etiquetas())

	c.Invalidar()
	assert.Equal(t, []string{"EFECTIVO", "TRANSFERENCIA"}, c.Etiquetas())
}
