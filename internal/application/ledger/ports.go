package ledger

import (
	"context"

	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción.
// Cabecera e ítems de un documento se escriben siempre dentro del mismo
// Run*: o se confirma todo o no queda nada visible para otros lectores.
type TxRunner interface {
	RunVentas(ctx context.Context, fn func(repo repository.VentaRepository) error) error
	RunCompras(ctx context.Context, fn func(repo repository.CompraRepository) error) error
	RunPagos(ctx context.Context, fn func(repo repository.PagoRepository) error) error
}
