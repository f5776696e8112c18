package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienda/cotizaciones-api/internal/application/dto"
	"github.com/tienda/cotizaciones-api/internal/application/usecase"
	"github.com/tienda/cotizaciones-api/internal/domain"
	"github.com/tienda/cotizaciones-api/internal/domain/entity"
	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

func newCotizacionUC(clienteRepo *fakeClienteRepo, cotizacionRepo *fakeCotizacionRepo) *usecase.CotizacionUseCase {
	runner := &fakeTxRunner{clienteRepo: clienteRepo, cotizacionRepo: cotizacionRepo}
	return usecase.NewCotizacionUseCase(runner)
}

func clienteJuan() *entity.Cliente {
	return &entity.Cliente{
		ID:        1,
		Nombres:   "Juan",
		Apellidos: "Pérez",
		Email:     "juan.perez@example.com",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear cotización
// ──────────────────────────────────────────────────────────────────────────────

// Caso: cliente existente -> se persiste con estado CREADA y la respuesta
// lleva nombre y email desnormalizados del cliente resuelto.
func TestCotizacionCrear_AsignaEstadoInicialYDenormaliza(t *testing.T) {
	clienteRepo := newFakeClienteRepo()
	clienteRepo.porID[1] = clienteJuan()
	cotizacionRepo := &fakeCotizacionRepo{}
	uc := newCotizacionUC(clienteRepo, cotizacionRepo)

	total := decimal.RequireFromString("259900.00")
	res, err := uc.Crear(context.Background(), dto.CotizacionCreateRequest{
		ClienteID: 1,
		Total:     total,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, int64(1), res.ClienteID)
	assert.Equal(t, "CREADA", res.Estado, "toda cotización nace CREADA")
	assert.True(t, res.Total.Equal(total), "el total se preserva")
	assert.Equal(t, "259900.00", res.Total.String(), "con sus dos decimales")
	assert.Equal(t, "Juan Pérez", res.ClienteNombre)
	assert.Equal(t, "juan.perez@example.com", res.ClienteEmail)

	require.Len(t, cotizacionRepo.creadas, 1)
	assert.Equal(t, entity.EstadoCreada, cotizacionRepo.creadas[0].Estado)
}

// Caso: el cliente referenciado no existe -> not-found con el id y no se
// persiste ninguna cotización.
func TestCotizacionCrear_ClienteInexistente(t *testing.T) {
	cotizacionRepo := &fakeCotizacionRepo{}
	uc := newCotizacionUC(newFakeClienteRepo(), cotizacionRepo)

	_, err := uc.Crear(context.Background(), dto.CotizacionCreateRequest{
		ClienteID: 42,
		Total:     decimal.RequireFromString("100.00"),
	})
	require.Error(t, err)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, err.Error(), "Cliente no encontrado con id: 42")
	assert.Empty(t, cotizacionRepo.creadas, "no debe persistir nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar cotizaciones por cliente
// ──────────────────────────────────────────────────────────────────────────────

// Caso: listar para un cliente inexistente es un error, no una página vacía,
// y nunca llega a consultar cotizaciones.
func TestCotizacionListar_ClienteInexistente(t *testing.T) {
	cotizacionRepo := &fakeCotizacionRepo{}
	uc := newCotizacionUC(newFakeClienteRepo(), cotizacionRepo)

	_, err := uc.ListarPorCliente(context.Background(), 999, repository.PageQuery{Page: 0, Size: 10})
	require.Error(t, err)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(999), nf.ID)
	assert.Empty(t, cotizacionRepo.listadas, "no debe consultar cotizaciones")
}

// Caso: size pedido por encima del tope se recorta a 50 en silencio; el
// índice de página pasa intacto.
func TestCotizacionListar_CapaTamanioDePagina(t *testing.T) {
	clienteRepo := newFakeClienteRepo()
	clienteRepo.porID[1] = clienteJuan()
	cotizacionRepo := &fakeCotizacionRepo{}
	uc := newCotizacionUC(clienteRepo, cotizacionRepo)

	_, err := uc.ListarPorCliente(context.Background(), 1, repository.PageQuery{Page: 7, Size: 500})
	require.NoError(t, err)

	require.Len(t, cotizacionRepo.listadas, 1)
	assert.Equal(t, usecase.MaxPageSize, cotizacionRepo.listadas[0].Size)
	assert.Equal(t, 7, cotizacionRepo.listadas[0].Page, "la página no se recorta")
}

// Caso: size inválido cae al default.
func TestCotizacionListar_SizeInvalidoUsaDefault(t *testing.T) {
	clienteRepo := newFakeClienteRepo()
	clienteRepo.porID[1] = clienteJuan()
	cotizacionRepo := &fakeCotizacionRepo{}
	uc := newCotizacionUC(clienteRepo, cotizacionRepo)

	_, err := uc.ListarPorCliente(context.Background(), 1, repository.PageQuery{Page: 0, Size: 0})
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultPageSize, cotizacionRepo.listadas[0].Size)
}

// Caso: lookup del cliente, conteo y página corren dentro de la transacción
// de lectura, no como consultas sueltas contra el pool.
func TestCotizacionListar_UsaTransaccionDeLectura(t *testing.T) {
	clienteRepo := newFakeClienteRepo()
	clienteRepo.porID[1] = clienteJuan()
	cotizacionRepo := &fakeCotizacionRepo{}
	runner := &fakeTxRunner{clienteRepo: clienteRepo, cotizacionRepo: cotizacionRepo}
	uc := usecase.NewCotizacionUseCase(runner)

	_, err := uc.ListarPorCliente(context.Background(), 1, repository.PageQuery{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, runner.lecturas, "el listado debe pasar por la transacción de lectura")
	require.Len(t, cotizacionRepo.listadas, 1)
}

// Caso: el resultado del repo se mapea al contrato con los datos del cliente
// que trajo el JOIN, y la envoltura calcula los metadatos de página.
func TestCotizacionListar_MapeaYEnvuelve(t *testing.T) {
	clienteRepo := newFakeClienteRepo()
	clienteRepo.porID[1] = clienteJuan()
	cotizacionRepo := &fakeCotizacionRepo{
		items: []*entity.Cotizacion{
			{
				ID:               10,
				ClienteID:        1,
				Total:            decimal.RequireFromString("1500000.00"),
				Estado:           entity.EstadoCreada,
				CreatedAt:        time.Now(),
				ClienteNombres:   "Juan",
				ClienteApellidos: "Pérez",
				ClienteEmail:     "juan.perez@example.com",
			},
			{
				ID:               11,
				ClienteID:        1,
				Total:            decimal.RequireFromString("259900.00"),
				Estado:           entity.EstadoCreada,
				CreatedAt:        time.Now(),
				ClienteNombres:   "Juan",
				ClienteApellidos: "Pérez",
				ClienteEmail:     "juan.perez@example.com",
			},
		},
		total: 5,
	}
	uc := newCotizacionUC(clienteRepo, cotizacionRepo)

	page, err := uc.ListarPorCliente(context.Background(), 1, repository.PageQuery{Page: 0, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 2)
	assert.Equal(t, int64(10), page.Content[0].ID)
	assert.Equal(t, "Juan Pérez", page.Content[0].ClienteNombre)
	assert.Equal(t, "juan.perez@example.com", page.Content[0].ClienteEmail)
	assert.Equal(t, "CREADA", page.Content[0].Estado)
}
