package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/usecase"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
)

// ProductoHandler maneja las peticiones HTTP de productos (protegido).
type ProductoHandler struct {
	uc *usecase.ProductosUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductosUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Stock:       p.Stock,
		Archivado:   p.ArchivedAt != nil,
		CreadoEn:    p.CreadoEn.Format(time.RFC3339),
		Actualizado: p.ActualizadoEn.Format(time.RFC3339),
	}
}

// Create POST /api/productos
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	p, err := h.uc.Crear(c.Context(), in.Nombre)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductoResponse(p))
}

// GetByID GET /api/productos/:id
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	p, err := h.uc.PorID(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(toProductoResponse(p))
}

// Archive POST /api/productos/:id/archivar
func (h *ProductoHandler) Archive(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Archivar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore POST /api/productos/:id/restaurar
func (h *ProductoHandler) Restore(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Restaurar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/productos?archivados=false&q=
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	archivados := c.QueryBool("archivados", false)
	list, err := h.uc.Listar(c.Context(), archivados, c.Query("q"))
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.ProductoResponse, 0, len(list))
	for i := range list {
		out = append(out, toProductoResponse(&list[i]))
	}
	return c.JSON(out)
}

// Options GET /api/productos/opciones
func (h *ProductoHandler) Options(c *fiber.Ctx) error {
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
