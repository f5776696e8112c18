package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tienda/cotizaciones-api/internal/application/dto"
	"github.com/tienda/cotizaciones-api/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP de clientes. Tiene el caso de uso
// de cotizaciones porque el listado anidado cuelga de /api/clientes/:id.
type ClienteHandler struct {
	clienteUC    *usecase.ClienteUseCase
	cotizacionUC *usecase.CotizacionUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(clienteUC *usecase.ClienteUseCase, cotizacionUC *usecase.CotizacionUseCase) *ClienteHandler {
	return &ClienteHandler{clienteUC: clienteUC, cotizacionUC: cotizacionUC}
}

// Crear POST /api/clientes
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.ClienteCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := in.Validar(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	cliente, err := h.clienteUC.Crear(c.UserContext(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// ObtenerPorID GET /api/clientes/:id
func (h *ClienteHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "id inválido")
	}
	cliente, err := h.clienteUC.ObtenerPorID(int64(id))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(cliente)
}

// ListarCotizaciones GET /api/clientes/:id/cotizaciones?page=0&size=10&sort=createdAt,desc
func (h *ClienteHandler) ListarCotizaciones(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "id inválido")
	}
	page, err := h.cotizacionUC.ListarPorCliente(c.UserContext(), int64(id), parsePageQuery(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(page)
}
