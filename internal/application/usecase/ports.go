package usecase

import (
	"context"

	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una misma
// transacción. Las escrituras de un request (pre-chequeo + insert, o lookup +
// insert) comparten frontera transaccional para no dejar estado parcial; las
// lecturas compuestas usan la variante de solo lectura para ver un mismo
// snapshot.
type TxRunner interface {
	RunCliente(ctx context.Context, fn func(clienteRepo repository.ClienteRepository) error) error
	RunCotizacion(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		cotizacionRepo repository.CotizacionRepository,
	) error) error
	RunCotizacionLectura(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		cotizacionRepo repository.CotizacionRepository,
	) error) error
}
