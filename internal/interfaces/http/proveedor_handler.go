package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/usecase"
)

// ProveedorHandler maneja las peticiones HTTP de proveedores (protegido).
type ProveedorHandler struct {
	uc *usecase.ProveedoresUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedoresUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Create POST /api/proveedores
func (h *ProveedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	p, err := h.uc.Crear(c.Context(), in.Nombre, in.Telefono)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(
		usecase.ToEntidadResponse(p.ID, p.Nombre, p.Telefono, p.ArchivedAt, p.CreadoEn, p.ActualizadoEn))
}

// GetByID GET /api/proveedores/:id
func (h *ProveedorHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	p, err := h.uc.PorID(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(usecase.ToEntidadResponse(p.ID, p.Nombre, p.Telefono, p.ArchivedAt, p.CreadoEn, p.ActualizadoEn))
}

// Update PUT /api/proveedores/:id
func (h *ProveedorHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	var in dto.ActualizarEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.Actualizar(c.Context(), id, in.Nombre, in.Telefono); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Archive POST /api/proveedores/:id/archivar
func (h *ProveedorHandler) Archive(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Archivar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore POST /api/proveedores/:id/restaurar
func (h *ProveedorHandler) Restore(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Restaurar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/proveedores?archivados=false&q=
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	archivados := c.QueryBool("archivados", false)
	list, err := h.uc.Listar(c.Context(), archivados, c.Query("q"))
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.EntidadListadoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.EntidadListadoResponse{
			ID:         p.ID,
			Nombre:     p.Nombre,
			Telefono:   p.Telefono,
			SaldoTotal: p.SaldoTotal,
		})
	}
	return c.JSON(out)
}

// Options GET /api/proveedores/opciones
func (h *ProveedorHandler) Options(c *fiber.Ctx) error {
	ops, err := h.uc.Opciones(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.OpcionResponse, 0, len(ops))
	for _, o := range ops {
		out = append(out, dto.OpcionResponse{ID: o.ID, Nombre: o.Nombre})
	}
	return c.JSON(out)
}
