package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-Id"

// RequestID asigna un id de correlación si el cliente no trae uno, lo deja
// en c.Locals y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("request_id", rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}

// GetRequestID devuelve el id de correlación de la petición.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals("request_id")
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
