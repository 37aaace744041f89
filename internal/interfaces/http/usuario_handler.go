package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/usecase"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
)

// UsuarioHandler administración de cuentas de acceso (solo ADMIN).
type UsuarioHandler struct {
	uc *usecase.UsuariosUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuariosUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID,
		Username: u.Username,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
}

// Create POST /api/usuarios
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	u, err := h.uc.CrearOperador(c.Context(), in.Username, in.Password)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toUsuarioResponse(u))
}

// List GET /api/usuarios
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.uc.Listar(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, toUsuarioResponse(&usuarios[i]))
	}
	return c.JSON(out)
}

// Activate POST /api/usuarios/:id/activar
func (h *UsuarioHandler) Activate(c *fiber.Ctx) error {
	return h.setActivo(c, true)
}

// Deactivate POST /api/usuarios/:id/desactivar
func (h *UsuarioHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActivo(c, false)
}

func (h *UsuarioHandler) setActivo(c *fiber.Ctx, activo bool) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.SetActivo(c.Context(), GetUserID(c), id, activo); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePassword PUT /api/usuarios/:id/password
func (h *UsuarioHandler) ChangePassword(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.CambiarPassword(c.Context(), id, in.Password); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
