package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/ledger"
)

// CompraHandler maneja las peticiones HTTP de compras (protegido).
type CompraHandler struct {
	uc *ledger.ComprasUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *ledger.ComprasUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Create POST /api/compras
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	fecha, ok := dto.FechaDocumento(in.Fecha)
	if !ok {
		return fechaInvalida(c)
	}
	id, err := h.uc.Registrar(c.Context(), in.ProveedorID, fecha, in.Items)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DocumentoCreadoResponse{ID: id})
}

// Update PUT /api/compras/:id
func (h *CompraHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	var in dto.RegistrarCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	fecha, ok := dto.FechaDocumento(in.Fecha)
	if !ok {
		return fechaInvalida(c)
	}
	if err := h.uc.Modificar(c.Context(), id, in.ProveedorID, fecha, in.Items); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/compras/:id
func (h *CompraHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID GET /api/compras/:id
func (h *CompraHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	resp, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/compras?desde=&hasta=&proveedor=
func (h *CompraHandler) List(c *fiber.Ctx) error {
	desde, hasta, ok := rangoFechas(c)
	if !ok {
		return fechaInvalida(c)
	}
	list, err := h.uc.Buscar(c.Context(), desde, hasta, c.Query("proveedor"))
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.CompraListadoResponse, 0, len(list))
	for _, co := range list {
		out = append(out, dto.CompraListadoResponse{
			ID:        co.ID,
			Fecha:     co.Fecha.Format("2006-01-02"),
			Proveedor: co.Proveedor,
			Productos: co.Productos,
			Total:     co.Total,
		})
	}
	return c.JSON(out)
}
