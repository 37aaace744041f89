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

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
// El total de la cabecera y el stock/saldo derivados los mantienen los
// triggers de venta_item; aquí solo se insertan/borran filas.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// InsertCabecera inserta la cabecera con total en cero y devuelve el id generado.
func (r *VentaRepo) InsertCabecera(clienteID int64, fecha time.Time, esCredito bool) (int64, error) {
	query := `
		INSERT INTO softfruver.venta (cliente_id, es_credito, total, fecha_venta, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		clienteID, esCredito, decimal.Zero, fecha,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert cabecera de venta cliente_id=%d fecha=%s: %w",
			clienteID, fecha.Format("2006-01-02"), err)
	}
	return id, nil
}

// UpdateCabecera actualiza cliente, crédito y fecha; devuelve filas afectadas.
func (r *VentaRepo) UpdateCabecera(ventaID, clienteID int64, fecha time.Time, esCredito bool) (int64, error) {
	query := `
		UPDATE softfruver.venta
		SET cliente_id = $2, es_credito = $3, fecha_venta = $4, actualizado_en = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, ventaID, clienteID, esCredito, fecha)
	if err != nil {
		return 0, fmt.Errorf("update cabecera de venta id=%d: %w", ventaID, err)
	}
	return tag.RowsAffected(), nil
}

// InsertItems inserta el juego de ítems de la venta.
func (r *VentaRepo) InsertItems(ventaID int64, items []entity.VentaItem) error {
	query := `
		INSERT INTO softfruver.venta_item (venta_id, producto_id, cantidad_kg, precio_unit)
		VALUES ($1, $2, $3, $4)`
	for _, it := range items {
		if _, err := r.q.Exec(context.Background(), query,
			ventaID, it.ProductoID, it.CantidadKg, it.PrecioUnit); err != nil {
			return fmt.Errorf("insert item de venta venta_id=%d producto_id=%d: %w",
				ventaID, it.ProductoID, err)
		}
	}
	return nil
}

// DeleteItems borra todos los ítems de la venta; devuelve filas afectadas.
func (r *VentaRepo) DeleteItems(ventaID int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM softfruver.venta_item WHERE venta_id = $1`, ventaID)
	if err != nil {
		return 0, fmt.Errorf("delete items de venta id=%d: %w", ventaID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteCabecera borra la cabecera; un id inexistente no es error.
func (r *VentaRepo) DeleteCabecera(ventaID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM softfruver.venta WHERE id = $1`, ventaID)
	if err != nil {
		return fmt.Errorf("delete cabecera de venta id=%d: %w", ventaID, err)
	}
	return nil
}

// ObtenerCabecera devuelve la cabecera con el nombre del cliente, o nil.
func (r *VentaRepo) ObtenerCabecera(ventaID int64) (*entity.VentaCabecera, error) {
	query := `
		SELECT v.id, cast(v.fecha_venta as date), v.cliente_id, c.nombre, v.total, v.es_credito
		FROM softfruver.venta v
		JOIN softfruver.cliente c ON c.id = v.cliente_id
		WHERE v.id = $1`
	var cab entity.VentaCabecera
	err := r.q.QueryRow(context.Background(), query, ventaID).Scan(
		&cab.ID, &cab.Fecha, &cab.ClienteID, &cab.Cliente, &cab.Total, &cab.EsCredito,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cabecera de venta id=%d: %w", ventaID, err)
	}
	return &cab, nil
}

// ObtenerDetalle devuelve las líneas con el nombre del producto resuelto.
func (r *VentaRepo) ObtenerDetalle(ventaID int64) ([]entity.VentaDetalleItem, error) {
	query := `
		SELECT vi.producto_id, p.nombre, vi.cantidad_kg, vi.precio_unit
		FROM softfruver.venta_item vi
		JOIN softfruver.producto p ON p.id = vi.producto_id
		WHERE vi.venta_id = $1
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("detalle de venta id=%d: %w", ventaID, err)
	}
	defer rows.Close()
	var list []entity.VentaDetalleItem
	for rows.Next() {
		var d entity.VentaDetalleItem
		if err := rows.Scan(&d.ProductoID, &d.Producto, &d.CantidadKg, &d.PrecioUnit); err != nil {
			return nil, fmt.Errorf("scan detalle de venta: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Buscar lista ventas por rango de fechas y nombre de cliente, con los
// productos agregados en una sola columna de texto.
func (r *VentaRepo) Buscar(desde, hasta *time.Time, clienteNombre string) ([]entity.VentaListado, error) {
	query := `
		SELECT
		  v.id,
		  cast(v.fecha_venta as date) AS fecha,
		  c.nombre AS cliente,
		  COALESCE(
		    string_agg(
		      (p.nombre || ' × ' || trim(to_char(vi.cantidad_kg, 'FM999999990.###')) || ' kg'),
		      ' · ' ORDER BY p.nombre
		    ), '—'
		  ) AS productos,
		  v.total,
		  v.es_credito
		FROM softfruver.venta v
		JOIN softfruver.cliente c ON c.id = v.cliente_id
		LEFT JOIN softfruver.venta_item vi ON vi.venta_id = v.id
		LEFT JOIN softfruver.producto p ON p.id = vi.producto_id
		WHERE
		  v.fecha_venta >= COALESCE($1::timestamp, '-infinity'::timestamp) AND
		  v.fecha_venta <  COALESCE($2::timestamp + interval '1 day', 'infinity'::timestamp) AND
		  (COALESCE($3,'') = '' OR c.nombre ILIKE CONCAT('%', $3::text, '%'))
		GROUP BY v.id, cast(v.fecha_venta as date), c.nombre, v.total, v.es_credito
		ORDER BY cast(v.fecha_venta as date) DESC, v.id DESC`
	rows, err := r.q.Query(context.Background(), query, desde, hasta, clienteNombre)
	if err != nil {
		return nil, fmt.Errorf("buscar ventas: %w", err)
	}
	defer rows.Close()
	var list []entity.VentaListado
	for rows.Next() {
		var v entity.VentaListado
		if err := rows.Scan(&v.ID, &v.Fecha, &v.Cliente, &v.Productos, &v.Total, &v.EsCredito); err != nil {
			return nil, fmt.Errorf("scan venta listado: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
