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

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación de CompraRepository. Misma mecánica que las
// ventas: el total y el stock los recalculan los triggers de compra_item.
type CompraRepo struct {
	q Querier
}

func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

func (r *CompraRepo) InsertCabecera(proveedorID int64, fecha time.Time) (int64, error) {
	query := `
		INSERT INTO softfruver.compra (proveedor_id, total, fecha_compra, creado_en, actualizado_en)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, proveedorID, decimal.Zero, fecha).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert cabecera de compra proveedor_id=%d fecha=%s: %w",
			proveedorID, fecha.Format("2006-01-02"), err)
	}
	return id, nil
}

func (r *CompraRepo) UpdateCabecera(compraID, proveedorID int64, fecha time.Time) (int64, error) {
	query := `
		UPDATE softfruver.compra
		SET proveedor_id = $2, fecha_compra = $3, actualizado_en = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, compraID, proveedorID, fecha)
	if err != nil {
		return 0, fmt.Errorf("update cabecera de compra id=%d: %w", compraID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *CompraRepo) InsertItems(compraID int64, items []entity.CompraItem) error {
	query := `
		INSERT INTO softfruver.compra_item (compra_id, producto_id, cantidad_kg, precio_unit)
		VALUES ($1, $2, $3, $4)`
	for _, it := range items {
		if _, err := r.q.Exec(context.Background(), query,
			compraID, it.ProductoID, it.CantidadKg, it.PrecioUnit); err != nil {
			return fmt.Errorf("insert item de compra compra_id=%d producto_id=%d: %w",
				compraID, it.ProductoID, err)
		}
	}
	return nil
}

func (r *CompraRepo) DeleteItems(compraID int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM softfruver.compra_item WHERE compra_id = $1`, compraID)
	if err != nil {
		return 0, fmt.Errorf("delete items de compra id=%d: %w", compraID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *CompraRepo) DeleteCabecera(compraID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM softfruver.compra WHERE id = $1`, compraID)
	if err != nil {
		return fmt.Errorf("delete cabecera de compra id=%d: %w", compraID, err)
	}
	return nil
}

func (r *CompraRepo) ObtenerCabecera(compraID int64) (*entity.CompraCabecera, error) {
	query := `
		SELECT co.id, cast(co.fecha_compra as date), co.proveedor_id, pr.nombre, co.total
		FROM softfruver.compra co
		JOIN softfruver.proveedor pr ON pr.id = co.proveedor_id
		WHERE co.id = $1`
	var cab entity.CompraCabecera
	err := r.q.QueryRow(context.Background(), query, compraID).Scan(
		&cab.ID, &cab.Fecha, &cab.ProveedorID, &cab.Proveedor, &cab.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cabecera de compra id=%d: %w", compraID, err)
	}
	return &cab, nil
}

func (r *CompraRepo) ObtenerDetalle(compraID int64) ([]entity.CompraDetalleItem, error) {
	query := `
		SELECT ci.producto_id, p.nombre, ci.cantidad_kg, ci.precio_unit
		FROM softfruver.compra_item ci
		JOIN softfruver.producto p ON p.id = ci.producto_id
		WHERE ci.compra_id = $1
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query, compraID)
	if err != nil {
		return nil, fmt.Errorf("detalle de compra id=%d: %w", compraID, err)
	}
	defer rows.Close()
	var list []entity.CompraDetalleItem
	for rows.Next() {
		var d entity.CompraDetalleItem
		if err := rows.Scan(&d.ProductoID, &d.Producto, &d.CantidadKg, &d.PrecioUnit); err != nil {
			return nil, fmt.Errorf("scan detalle de compra: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *CompraRepo) Buscar(desde, hasta *time.Time, proveedorNombre string) ([]entity.CompraListado, error) {
	query := `
		SELECT
		  co.id,
		  cast(co.fecha_compra as date) AS fecha,
		  pr.nombre AS proveedor,
		  COALESCE(
		    string_agg(
		      (p.nombre || ' × ' || trim(to_char(ci.cantidad_kg, 'FM999999990.###')) || ' kg'),
		      ' · ' ORDER BY p.nombre
		    ), '—'
		  ) AS productos,
		  co.total
		FROM softfruver.compra co
		JOIN softfruver.proveedor pr ON pr.id = co.proveedor_id
		LEFT JOIN softfruver.compra_item ci ON ci.compra_id = co.id
		LEFT JOIN softfruver.producto p ON p.id = ci.producto_id
		WHERE
		  co.fecha_compra >= COALESCE($1::timestamp, '-infinity'::timestamp) AND
		  co.fecha_compra <  COALESCE($2::timestamp + interval '1 day', 'infinity'::timestamp) AND
		  (COALESCE($3,'') = '' OR pr.nombre ILIKE CONCAT('%', $3::text, '%'))
		GROUP BY co.id, cast(co.fecha_compra as date), pr.nombre, co.total
		ORDER BY cast(co.fecha_compra as date) DESC, co.id DESC`
	rows, err := r.q.Query(context.Background(), query, desde, hasta, proveedorNombre)
	if err != nil {
		return nil, fmt.Errorf("buscar compras: %w", err)
	}
	defer rows.Close()
	var list []entity.CompraListado
	for rows.Next() {
		var c entity.CompraListado
		if err := rows.Scan(&c.ID, &c.Fecha, &c.Proveedor, &c.Productos, &c.Total); err != nil {
			return nil, fmt.Errorf("scan compra listado: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
