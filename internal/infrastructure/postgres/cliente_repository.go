package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
// La unicidad de nombre usa lower(f_unaccent(...)): mismo criterio que el
// índice único de la base, que es el respaldo real ante concurrencia.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Crear persiste un nuevo cliente y asigna el id generado.
func (r *ClienteRepo) Crear(c *entity.Cliente) error {
	query := `
		INSERT INTO softfruver.cliente (nombre, telefono, archived_at, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nombre, c.Telefono, c.ArchivedAt, c.CreadoEn, c.ActualizadoEn,
	).Scan(&c.ID)
	if err != nil {
		if dup := dupEntidad(err, "cliente"); dup != nil {
			return dup
		}
		return fmt.Errorf("insert cliente nombre=%s: %w", c.Nombre, err)
	}
	return nil
}

// PorID obtiene un cliente por ID. Devuelve nil si no existe.
func (r *ClienteRepo) PorID(id int64) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, telefono, archived_at, creado_en, actualizado_en
		FROM softfruver.cliente WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Telefono, &c.ArchivedAt, &c.CreadoEn, &c.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente id=%d: %w", id, err)
	}
	return &c, nil
}

// Actualizar escribe nombre, teléfono, estado de archivo y actualizado_en.
func (r *ClienteRepo) Actualizar(c *entity.Cliente) error {
	query := `
		UPDATE softfruver.cliente
		SET nombre = $2, telefono = $3, archived_at = $4, actualizado_en = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Telefono, c.ArchivedAt, c.ActualizadoEn,
	)
	if err != nil {
		if dup := dupEntidad(err, "cliente"); dup != nil {
			return dup
		}
		return fmt.Errorf("update cliente id=%d: %w", c.ID, err)
	}
	return nil
}

// ExistsNombreNormalizado indica si hay un cliente activo con ese nombre,
// ignorando tildes y mayúsculas (mismo criterio que el índice único).
func (r *ClienteRepo) ExistsNombreNormalizado(nombre string) (bool, error) {
	query := `
		SELECT COUNT(*) > 0
		FROM softfruver.cliente c
		WHERE c.archived_at IS NULL
		  AND lower(softfruver.f_unaccent(c.nombre)) = lower(softfruver.f_unaccent($1))`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, nombre).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists cliente nombre: %w", err)
	}
	return exists, nil
}

// ExistsTelefonoActivo indica si hay un cliente activo con ese teléfono.
func (r *ClienteRepo) ExistsTelefonoActivo(telefono string) (bool, error) {
	query := `
		SELECT COUNT(*) > 0
		FROM softfruver.cliente c
		WHERE c.archived_at IS NULL
		  AND c.telefono IS NOT NULL
		  AND c.telefono = $1`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, telefono).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists cliente telefono: %w", err)
	}
	return exists, nil
}

// Listar devuelve activos (ordenados por saldo descendente) o archivados
// (por última modificación), con filtro opcional por nombre. El saldo viene
// de la vista v_saldo_cliente que mantiene la base.
func (r *ClienteRepo) Listar(archivados bool, q string) ([]entity.ClienteListado, error) {
	estado := "c.archived_at IS NULL"
	orden := "COALESCE(vs.saldo_total,0) DESC, c.nombre ASC"
	if archivados {
		estado = "c.archived_at IS NOT NULL"
		orden = "c.actualizado_en DESC, c.nombre ASC"
	}
	query := `
		SELECT c.id, c.nombre, c.telefono, COALESCE(vs.saldo_total,0) AS saldo_total
		FROM softfruver.cliente c
		LEFT JOIN softfruver.v_saldo_cliente vs ON vs.cliente_id = c.id
		WHERE ` + estado + `
		  AND (COALESCE($1,'') = '' OR c.nombre ILIKE CONCAT('%', $1::text, '%'))
		ORDER BY ` + orden
	rows, err := r.q.Query(context.Background(), query, q)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []entity.ClienteListado
	for rows.Next() {
		var c entity.ClienteListado
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.SaldoTotal); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Opciones devuelve id/nombre de clientes activos ordenados por nombre.
func (r *ClienteRepo) Opciones() ([]entity.Opcion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM softfruver.cliente WHERE archived_at IS NULL ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("opciones clientes: %w", err)
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
