package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tienda/cotizaciones-api/internal/application/dto"
	"github.com/tienda/cotizaciones-api/internal/application/usecase"
)

// CotizacionHandler maneja las peticiones HTTP de cotizaciones.
type CotizacionHandler struct {
	uc *usecase.CotizacionUseCase
}

// NewCotizacionHandler construye el handler.
func NewCotizacionHandler(uc *usecase.CotizacionUseCase) *CotizacionHandler {
	return &CotizacionHandler{uc: uc}
}

// Crear POST /api/cotizaciones
func (h *CotizacionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CotizacionCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := in.Validar(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	cotizacion, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cotizacion)
}
