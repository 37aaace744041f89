package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Crear persiste un nuevo proveedor y asigna el id generado.
func (r *ProveedorRepo) Crear(p *entity.Proveedor) error {
	query := `
		INSERT INTO softfruver.proveedor (nombre, telefono, archived_at, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.Telefono, p.ArchivedAt, p.CreadoEn, p.ActualizadoEn,
	).Scan(&p.ID)
	if err != nil {
		if dup := dupEntidad(err, "proveedor"); dup != nil {
			return dup
		}
		return fmt.Errorf("insert proveedor nombre=%s: %w", p.Nombre, err)
	}
	return nil
}

// PorID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *ProveedorRepo) PorID(id int64) (*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, telefono, archived_at, creado_en, actualizado_en
		FROM softfruver.proveedor WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Telefono, &p.ArchivedAt, &p.CreadoEn, &p.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor id=%d: %w", id, err)
	}
	return &p, nil
}

// Actualizar escribe nombre, teléfono, estado de archivo y actualizado_en.
func (r *ProveedorRepo) Actualizar(p *entity.Proveedor) error {
	query := `
		UPDATE softfruver.proveedor
		SET nombre = $2, telefono = $3, archived_at = $4, actualizado_en = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Telefono, p.ArchivedAt, p.ActualizadoEn,
	)
	if err != nil {
		if dup := dupEntidad(err, "proveedor"); dup != nil {
			return dup
		}
		return fmt.Errorf("update proveedor id=%d: %w", p.ID, err)
	}
	return nil
}

// ExistsNombreNormalizado indica si hay un proveedor activo con ese nombre,
// ignorando tildes y mayúsculas.
func (r *ProveedorRepo) ExistsNombreNormalizado(nombre string) (bool, error) {
	query := `
		SELECT COUNT(*) > 0
		FROM softfruver.proveedor p
		WHERE p.archived_at IS NULL
		  AND lower(softfruver.f_unaccent(p.nombre)) = lower(softfruver.f_unaccent($1))`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, nombre).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists proveedor nombre: %w", err)
	}
	return exists, nil
}

// ExistsTelefonoActivo indica si hay un proveedor activo con ese teléfono.
func (r *ProveedorRepo) ExistsTelefonoActivo(telefono string) (bool, error) {
	query := `
		SELECT COUNT(*) > 0
		FROM softfruver.proveedor p
		WHERE p.archived_at IS NULL
		  AND p.telefono IS NOT NULL
		  AND p.telefono = $1`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, telefono).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists proveedor telefono: %w", err)
	}
	return exists, nil
}

// Listar devuelve activos o archivados con filtro opcional por nombre.
func (r *ProveedorRepo) Listar(archivados bool, q string) ([]entity.ProveedorListado, error) {
	estado := "p.archived_at IS NULL"
	orden := "COALESCE(vs.saldo_total,0) DESC, p.nombre ASC"
	if archivados {
		estado = "p.archived_at IS NOT NULL"
		orden = "p.actualizado_en DESC, p.nombre ASC"
	}
	query := `
		SELECT p.id, p.nombre, p.telefono, COALESCE(vs.saldo_total,0) AS saldo_total
		FROM softfruver.proveedor p
		LEFT JOIN softfruver.v_saldo_proveedor vs ON vs.proveedor_id = p.id
		WHERE ` + estado + `
		  AND (COALESCE($1,'') = '' OR p.nombre ILIKE CONCAT('%', $1::text, '%'))
		ORDER BY ` + orden
	rows, err := r.q.Query(context.Background(), query, q)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []entity.ProveedorListado
	for rows.Next() {
		var p entity.ProveedorListado
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Telefono, &p.SaldoTotal); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Opciones devuelve id/nombre de proveedores activos ordenados por nombre.
func (r *ProveedorRepo) Opciones() ([]entity.Opcion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM softfruver.proveedor WHERE archived_at IS NULL ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("opciones proveedores: %w", err)
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
