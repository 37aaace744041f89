package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
// stock_kg lo escriben solo los triggers de venta_item/compra_item.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Crear persiste un producto nuevo; el stock arranca en cero en la base.
func (r *ProductoRepo) Crear(p *entity.Producto) error {
	query := `
		INSERT INTO softfruver.producto (nombre, archived_at, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.ArchivedAt, p.CreadoEn, p.ActualizadoEn,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert producto nombre=%s: %w", p.Nombre, err)
	}
	return nil
}

// PorID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductoRepo) PorID(id int64) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, COALESCE(stock_kg, 0), archived_at, creado_en, actualizado_en
		FROM softfruver.producto WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Stock, &p.ArchivedAt, &p.CreadoEn, &p.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto id=%d: %w", id, err)
	}
	return &p, nil
}

// Actualizar escribe nombre y estado de archivo (nunca el stock).
func (r *ProductoRepo) Actualizar(p *entity.Producto) error {
	query := `
		UPDATE softfruver.producto
		SET nombre = $2, archived_at = $3, actualizado_en = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nombre, p.ArchivedAt, p.ActualizadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update producto id=%d: %w", p.ID, err)
	}
	return nil
}

// ExistsNombreNormalizado indica si hay un producto activo con ese nombre.
func (r *ProductoRepo) ExistsNombreNormalizado(nombre string) (bool, error) {
	query := `
		SELECT COUNT(*) > 0
		FROM softfruver.producto p
		WHERE p.archived_at IS NULL
		  AND lower(softfruver.f_unaccent(p.nombre)) = lower(softfruver.f_unaccent($1))`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, nombre).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists producto nombre: %w", err)
	}
	return exists, nil
}

// Listar devuelve productos activos o archivados con filtro por nombre.
func (r *ProductoRepo) Listar(archivados bool, q string) ([]entity.Producto, error) {
	estado := "archived_at IS NULL"
	if archivados {
		estado = "archived_at IS NOT NULL"
	}
	query := `
		SELECT id, nombre, COALESCE(stock_kg, 0), archived_at, creado_en, actualizado_en
		FROM softfruver.producto
		WHERE ` + estado + `
		  AND (COALESCE($1,'') = '' OR nombre ILIKE CONCAT('%', $1::text, '%'))
		ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, q)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Stock, &p.ArchivedAt, &p.CreadoEn, &p.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Opciones devuelve id/nombre de productos activos ordenados por nombre.
func (r *ProductoRepo) Opciones() ([]entity.Opcion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM softfruver.producto WHERE archived_at IS NULL ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("opciones productos: %w", err)
	}
	defer rows.Close()
	var list []entity.Opcion
	for rows.Next() {
		var o entity.Opcion
		if err := rows.Scan(&o.ID, &o.Nombre); err != nil {
			return nil, fmt.Errorf("scan opcion: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
