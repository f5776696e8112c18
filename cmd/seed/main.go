// seed inserta datos de prueba: un cliente y una cotización de ejemplo.
// Pensado para entornos de desarrollo; usa la misma configuración que la API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tienda/cotizaciones-api/internal/application/dto"
	"github.com/tienda/cotizaciones-api/internal/application/usecase"
	"github.com/tienda/cotizaciones-api/internal/infrastructure/postgres"
	"github.com/tienda/cotizaciones-api/pkg/config"
	"github.com/tienda/cotizaciones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	clienteUC := usecase.NewClienteUseCase(clienteRepo, txRunner)
	cotizacionUC := usecase.NewCotizacionUseCase(txRunner)

	cliente, err := clienteUC.Crear(ctx, dto.ClienteCreateRequest{
		Nombres:   "Juan",
		Apellidos: "Pérez",
		Email:     "juan.perez+test@email.com",
		Telefono:  "3001234567",
		Documento: "CC123456789",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("insertar cliente de prueba")
	}

	cotizacion, err := cotizacionUC.Crear(ctx, dto.CotizacionCreateRequest{
		ClienteID: cliente.ID,
		Total:     decimal.RequireFromString("1500000.00"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("insertar cotización de prueba")
	}

	log.Info().
		Int64("cliente_id", cliente.ID).
		Int64("cotizacion_id", cotizacion.ID).
		Msg("datos de prueba insertados")
}
