package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/ledger"
)

// PagoHandler maneja las peticiones HTTP de pagos (protegido).
type PagoHandler struct {
	uc       *ledger.PagosUseCase
	catalogo *ledger.MetodoCatalogo
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *ledger.PagosUseCase, catalogo *ledger.MetodoCatalogo) *PagoHandler {
	return &PagoHandler{uc: uc, catalogo: catalogo}
}

// Create POST /api/pagos
func (h *PagoHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	fecha, ok := dto.FechaDocumento(in.Fecha)
	if !ok {
		return fechaInvalida(c)
	}
	id, err := h.uc.Registrar(c.Context(), in.Tipo, in.RefID, fecha, in.Monto, in.Metodo)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DocumentoCreadoResponse{ID: id})
}

// Update PUT /api/pagos/:id
func (h *PagoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	fecha, ok := dto.FechaDocumento(in.Fecha)
	if !ok {
		return fechaInvalida(c)
	}
	if err := h.uc.Modificar(c.Context(), id, in.Tipo, in.RefID, fecha, in.Monto, in.Metodo); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/pagos/:id
func (h *PagoHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID GET /api/pagos/:id
func (h *PagoHandler) GetByID(c *fiber.Ctx) error {
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

// List GET /api/pagos?desde=&hasta=&nombre=&tipo=
func (h *PagoHandler) List(c *fiber.Ctx) error {
	desde, hasta, ok := rangoFechas(c)
	if !ok {
		return fechaInvalida(c)
	}
	list, err := h.uc.Buscar(c.Context(), desde, hasta, c.Query("nombre"), c.Query("tipo"))
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.PagoListadoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PagoListadoResponse{
			ID:        p.ID,
			Fecha:     p.Fecha.Format("2006-01-02"),
			Tipo:      p.Tipo,
			RefNombre: p.RefNombre,
			Monto:     p.Monto,
			Metodo:    p.Metodo,
		})
	}
	return c.JSON(out)
}

// Methods GET /api/pagos/metodos
func (h *PagoHandler) Methods(c *fiber.Ctx) error {
	return c.JSON(dto.MetodosResponse{Metodos: h.catalogo.Etiquetas()})
}
