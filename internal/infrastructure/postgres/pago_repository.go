package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository sobre las dos tablas de pagos.
// Los saldos de cliente/proveedor los mantienen los triggers de cada tabla.
type PagoRepo struct {
	q Querier
}

func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

func (r *PagoRepo) InsertPagoCliente(clienteID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	query := `
		INSERT INTO softfruver.pago_cliente (cliente_id, fecha_pago, monto, metodo, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4::softfruver.metodo_pago, now(), now())
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, clienteID, fecha, monto, metodo).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert pago de cliente cliente_id=%d: %w", clienteID, err)
	}
	return id, nil
}

func (r *PagoRepo) InsertPagoProveedor(proveedorID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	query := `
		INSERT INTO softfruver.pago_proveedor (proveedor_id, fecha_pago, monto, metodo, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4::softfruver.metodo_pago, now(), now())
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, proveedorID, fecha, monto, metodo).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert pago a proveedor proveedor_id=%d: %w", proveedorID, err)
	}
	return id, nil
}

func (r *PagoRepo) UpdatePagoCliente(id, clienteID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	query := `
		UPDATE softfruver.pago_cliente
		SET cliente_id = $2, fecha_pago = $3, monto = $4, metodo = $5::softfruver.metodo_pago, actualizado_en = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, clienteID, fecha, monto, metodo)
	if err != nil {
		return 0, fmt.Errorf("update pago de cliente id=%d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PagoRepo) UpdatePagoProveedor(id, proveedorID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	query := `
		UPDATE softfruver.pago_proveedor
		SET proveedor_id = $2, fecha_pago = $3, monto = $4, metodo = $5::softfruver.metodo_pago, actualizado_en = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, proveedorID, fecha, monto, metodo)
	if err != nil {
		return 0, fmt.Errorf("update pago a proveedor id=%d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PagoRepo) DeletePagoCliente(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM softfruver.pago_cliente WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago de cliente id=%d: %w", id, err)
	}
	return nil
}

func (r *PagoRepo) DeletePagoProveedor(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM softfruver.pago_proveedor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago a proveedor id=%d: %w", id, err)
	}
	return nil
}

// TipoPorID resuelve en qué tabla vive el id. Si aparece en las dos (ids son
// seriales independientes) gana CLIENTE, igual que en la lista unificada.
func (r *PagoRepo) TipoPorID(id int64) (string, error) {
	query := `
		SELECT tipo FROM (
		  SELECT 'CLIENTE' AS tipo, 0 AS ord FROM softfruver.pago_cliente WHERE id = $1
		  UNION ALL
		  SELECT 'PROVEEDOR' AS tipo, 1 AS ord FROM softfruver.pago_proveedor WHERE id = $1
		) t
		ORDER BY ord
		LIMIT 1`
	var tipo string
	err := r.q.QueryRow(context.Background(), query, id).Scan(&tipo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("resolver tipo de pago id=%d: %w", id, err)
	}
	return tipo, nil
}

// MetodoLabels lee las etiquetas del enum metodo_pago en su orden declarado.
func (r *PagoRepo) MetodoLabels() ([]string, error) {
	query := `
		SELECT e.enumlabel
		FROM pg_enum e
		JOIN pg_type t ON t.oid = e.enumtypid
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE t.typname = 'metodo_pago' AND n.nspname = 'softfruver'
		ORDER BY e.enumsortorder`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("leer etiquetas de metodo_pago: %w", err)
	}
	defer rows.Close()
	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scan etiqueta de metodo_pago: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

func (r *PagoRepo) ObtenerCabecera(id int64) (*entity.PagoCabecera, error) {
	query := `
		SELECT id, fecha, tipo, ref_id, ref_nombre, monto, metodo FROM (
		  SELECT pc.id, cast(pc.fecha_pago as date) AS fecha, 'CLIENTE' AS tipo,
		         pc.cliente_id AS ref_id, c.nombre AS ref_nombre, pc.monto, pc.metodo::text, 0 AS ord
		  FROM softfruver.pago_cliente pc
		  JOIN softfruver.cliente c ON c.id = pc.cliente_id
		  WHERE pc.id = $1
		  UNION ALL
		  SELECT pp.id, cast(pp.fecha_pago as date) AS fecha, 'PROVEEDOR' AS tipo,
		         pp.proveedor_id AS ref_id, pr.nombre AS ref_nombre, pp.monto, pp.metodo::text, 1 AS ord
		  FROM softfruver.pago_proveedor pp
		  JOIN softfruver.proveedor pr ON pr.id = pp.proveedor_id
		  WHERE pp.id = $1
		) t
		ORDER BY ord
		LIMIT 1`
	var cab entity.PagoCabecera
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&cab.ID, &cab.Fecha, &cab.Tipo, &cab.RefID, &cab.RefNombre, &cab.Monto, &cab.Metodo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cabecera de pago id=%d: %w", id, err)
	}
	return &cab, nil
}

// Buscar lista pagos de ambas tablas en una sola serie, filtrable por rango
// de fechas, nombre de la contraparte y tipo (CLIENTE | PROVEEDOR | "").
func (r *PagoRepo) Buscar(desde, hasta *time.Time, refNombre, tipo string) ([]entity.PagoListado, error) {
	query := `
		SELECT id, fecha, tipo, ref_nombre, monto, metodo FROM (
		  SELECT pc.id, cast(pc.fecha_pago as date) AS fecha, 'CLIENTE' AS tipo,
		         c.nombre AS ref_nombre, pc.monto, pc.metodo::text,
		         pc.fecha_pago AS orden
		  FROM softfruver.pago_cliente pc
		  JOIN softfruver.cliente c ON c.id = pc.cliente_id
		  UNION ALL
		  SELECT pp.id, cast(pp.fecha_pago as date) AS fecha, 'PROVEEDOR' AS tipo,
		         pr.nombre AS ref_nombre, pp.monto, pp.metodo::text,
		         pp.fecha_pago AS orden
		  FROM softfruver.pago_proveedor pp
		  JOIN softfruver.proveedor pr ON pr.id = pp.proveedor_id
		) t
		WHERE
		  t.orden >= COALESCE($1::timestamp, '-infinity'::timestamp) AND
		  t.orden <  COALESCE($2::timestamp + interval '1 day', 'infinity'::timestamp) AND
		  (COALESCE($3,'') = '' OR t.ref_nombre ILIKE CONCAT('%', $3::text, '%')) AND
		  (COALESCE($4,'') = '' OR t.tipo = $4)
		ORDER BY t.orden DESC, t.id DESC`
	rows, err := r.q.Query(context.Background(), query, desde, hasta, refNombre, tipo)
	if err != nil {
		return nil, fmt.Errorf("buscar pagos: %w", err)
	}
	defer rows.Close()
	var list []entity.PagoListado
	for rows.Next() {
		var p entity.PagoListado
		if err := rows.Scan(&p.ID, &p.Fecha, &p.Tipo, &p.RefNombre, &p.Monto, &p.Metodo); err != nil {
			return nil, fmt.Errorf("scan pago listado: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
