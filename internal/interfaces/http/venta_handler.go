package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/application/ledger"
)

// VentaHandler maneja las peticiones HTTP de ventas (protegido).
type VentaHandler struct {
	uc *ledger.VentasUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ledger.VentasUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// rangoFechas parsea ?desde=YYYY-MM-DD&hasta=YYYY-MM-DD; ausente es nil.
func rangoFechas(c *fiber.Ctx) (desde, hasta *time.Time, ok bool) {
	if s := c.Query("desde"); s != "" {
		t, valido := dto.FechaDocumento(s)
		if !valido {
			return nil, nil, false
		}
		desde = &t
	}
	if s := c.Query("hasta"); s != "" {
		t, valido := dto.FechaDocumento(s)
		if !valido {
			return nil, nil, false
		}
		hasta = &t
	}
	return desde, hasta, true
}

// Create POST /api/ventas
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	fecha, ok := dto.FechaDocumento(in.Fecha)
	if !ok {
		return fechaInvalida(c)
	}
	id, err := h.uc.Registrar(c.Context(), in.ClienteID, fecha, in.EsCredito, in.Items)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DocumentoCreadoResponse{ID: id})
}

// Update PUT /api/ventas/:id
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	fecha, ok := dto.FechaDocumento(in.Fecha)
	if !ok {
		return fechaInvalida(c)
	}
	if err := h.uc.Modificar(c.Context(), id, in.ClienteID, fecha, in.EsCredito, in.Items); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/ventas/:id
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return idInvalido(c)
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID GET /api/ventas/:id
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
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

// List GET /api/ventas?desde=&hasta=&cliente=
func (h *VentaHandler) List(c *fiber.Ctx) error {
	desde, hasta, ok := rangoFechas(c)
	if !ok {
		return fechaInvalida(c)
	}
	list, err := h.uc.Buscar(c.Context(), desde, hasta, c.Query("cliente"))
	if err != nil {
		return respuestaError(c, err)
	}
	out := make([]dto.VentaListadoResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.VentaListadoResponse{
			ID:        v.ID,
			Fecha:     v.Fecha.Format("2006-01-02"),
			Cliente:   v.Cliente,
			Productos: v.Productos,
			Total:     v.Total,
			EsCredito: v.EsCredito,
		})
	}
	return c.JSON(out)
}
