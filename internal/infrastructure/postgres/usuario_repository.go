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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// PorUsername devuelve el usuario o nil si no existe.
func (r *UsuarioRepo) PorUsername(username string) (*entity.Usuario, error) {
	query := `
		SELECT id, username, pass_hash, rol, activo, creado_en, actualizado_en
		FROM softfruver.usuario
		WHERE username = $1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, username).Scan(
		&u.ID, &u.Username, &u.PassHash, &u.Rol, &u.Activo, &u.CreadoEn, &u.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario username=%s: %w", username, err)
	}
	return &u, nil
}

// PorID devuelve el usuario o nil si no existe.
func (r *UsuarioRepo) PorID(id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, username, pass_hash, rol, activo, creado_en, actualizado_en
		FROM softfruver.usuario
		WHERE id = $1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Username, &u.PassHash, &u.Rol, &u.Activo, &u.CreadoEn, &u.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario id=%d: %w", id, err)
	}
	return &u, nil
}

// ExistsUsername indica si hay una cuenta con ese nombre, ignorando
// mayúsculas (mismo criterio que el índice único).
func (r *UsuarioRepo) ExistsUsername(username string) (bool, error) {
	query := `
		SELECT COUNT(*) > 0
		FROM softfruver.usuario
		WHERE lower(username) = lower($1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists usuario username: %w", err)
	}
	return exists, nil
}

// Listar devuelve todas las cuentas ordenadas por nombre de usuario.
func (r *UsuarioRepo) Listar() ([]entity.Usuario, error) {
	query := `
		SELECT id, username, pass_hash, rol, activo, creado_en, actualizado_en
		FROM softfruver.usuario
		ORDER BY username`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var out []entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PassHash, &u.Rol, &u.Activo, &u.CreadoEn, &u.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsuarioRepo) Crear(u *entity.Usuario) error {
	query := `
		INSERT INTO softfruver.usuario (username, pass_hash, rol, activo, creado_en, actualizado_en)
		VALUES ($1, $2, $3::softfruver.rol_usuario, $4, now(), now())
		RETURNING id, creado_en, actualizado_en`
	err := r.q.QueryRow(context.Background(), query,
		u.Username, u.PassHash, u.Rol, u.Activo,
	).Scan(&u.ID, &u.CreadoEn, &u.ActualizadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicadof("username %q ya existe", u.Username)
		}
		return fmt.Errorf("insert usuario username=%s: %w", u.Username, err)
	}
	return nil
}

// Actualizar escribe username, hash de contraseña, estado y actualizado_en.
func (r *UsuarioRepo) Actualizar(u *entity.Usuario) error {
	query := `
		UPDATE softfruver.usuario
		SET username = $2, pass_hash = $3, activo = $4, actualizado_en = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.PassHash, u.Activo, u.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicadof("username %q ya existe", u.Username)
		}
		return fmt.Errorf("update usuario id=%d: %w", u.ID, err)
	}
	return nil
}
