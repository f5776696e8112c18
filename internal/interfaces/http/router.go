package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tienda/cotizaciones-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC    *usecase.ClienteUseCase
	CotizacionUC *usecase.CotizacionUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.CotizacionUC)
	clientes := api.Group("/clientes")
	clientes.Post("/", clienteHandler.Crear)
	clientes.Get("/:id", clienteHandler.ObtenerPorID)
	clientes.Get("/:id/cotizaciones", clienteHandler.ListarCotizaciones)

	cotizacionHandler := NewCotizacionHandler(deps.CotizacionUC)
	cotizaciones := api.Group("/cotizaciones")
	cotizaciones.Post("/", cotizacionHandler.Crear)
}
