package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/softfruver/fruver-ledger/internal/application/auth"
	"github.com/softfruver/fruver-ledger/internal/application/dto"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(resp)
}
