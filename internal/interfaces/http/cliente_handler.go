package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc *usecase.ClientesUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClientesUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	cli, err := h.uc.Crear(c.Context(), in.Nombre, in.Telefono)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(
		usecase.ToEntidadResponse(cli.ID, cli.Nombre, cli.Telefono, cli.ArchivedAt, cli.CreadoEn, cli.ActualizadoEn))
}

// GetByID GET /api/clientes/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	cli, err := h.uc.PorID(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(usecase.ToEntidadResponse(cli.ID, cli.Nombre, cli.Telefono, cli.ArchivedAt, cli.CreadoEn, cli.ActualizadoEn))
}

// Update PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
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

// Archive POST /api/clientes/:id/archivar
func (h *ClienteHandler) Archive(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Archivar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore POST /api/clientes/:id/restaurar
func (h *ClienteHandler) Restore(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Restaurar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/clientes?archivados=false&q=
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	archivados := c.QueryBool("archivados", false)
	list, err := h.uc.Listar(c.Context(), archivados, c.Query("q"))
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.EntidadListadoResponse, 0, len(list))
	for _, cl := range list {
		out = append(out, dto.EntidadListadoResponse{
			ID:         cl.ID,
			Nombre:     cl.Nombre,
			Telefono:   cl.Telefono,
			SaldoTotal: cl.SaldoTotal,
		})
	}
	return c.JSON(out)
}

// Options GET /api/clientes/opciones
func (h *ClienteHandler) Options(c *fiber.Ctx) error {
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
