package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tienda/cotizaciones-api/internal/application/dto"
	"github.com/tienda/cotizaciones-api/internal/domain"
)

// respondError arma el cuerpo uniforme de error:
// {timestamp, status, error, message, path}.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Path(),
	})
}

// mapDomainError traduce errores de servicio a status HTTP: not-found -> 404,
// duplicado y entrada inválida -> 400, resto -> 500 genérico.
func mapDomainError(c *fiber.Ctx, err error) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return respondError(c, fiber.StatusNotFound, nf.Error())
	}
	if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrInvalidInput) {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	return respondError(c, fiber.StatusInternalServerError, "error interno del servidor")
}
