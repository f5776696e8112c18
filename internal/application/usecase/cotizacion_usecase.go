package usecase

import (
	"context"

	"github.com/tienda/cotizaciones-api/internal/application/dto"
	"github.com/tienda/cotizaciones-api/internal/domain"
	"github.com/tienda/cotizaciones-api/internal/domain/entity"
	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

// MaxPageSize tope de tamaño de página para listados de cotizaciones. El caso
// de uso es la única autoridad del tope: aplica para cualquier caller.
const MaxPageSize = 50

// DefaultPageSize tamaño usado cuando el caller no pide uno válido.
const DefaultPageSize = 10

// CotizacionUseCase casos de uso para cotizaciones. Todas las operaciones
// corren dentro de una transacción del runner: las escrituras para no dejar
// estado parcial, los listados en modo lectura para que conteo y página sean
// consistentes entre sí.
type CotizacionUseCase struct {
	txRunner TxRunner
}

// NewCotizacionUseCase construye el caso de uso.
func NewCotizacionUseCase(txRunner TxRunner) *CotizacionUseCase {
	return &CotizacionUseCase{txRunner: txRunner}
}

// Crear crea una cotización para un cliente existente. El lookup del cliente y
// el insert comparten transacción; el estado siempre nace CREADA sin importar
// lo que mande el caller.
func (uc *CotizacionUseCase) Crear(ctx context.Context, in dto.CotizacionCreateRequest) (*dto.CotizacionResponse, error) {
	var cotizacion *entity.Cotizacion
	var cliente *entity.Cliente

	err := uc.txRunner.RunCotizacion(ctx, func(
		clienteRepo repository.ClienteRepository,
		cotizacionRepo repository.CotizacionRepository,
	) error {
		var err error
		cliente, err = clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.NewNotFound("Cliente", in.ClienteID)
		}
		cotizacion = &entity.Cotizacion{
			ClienteID: cliente.ID,
			Total:     in.Total,
			Estado:    entity.EstadoCreada,
		}
		return cotizacionRepo.Create(cotizacion)
	})
	if err != nil {
		return nil, err
	}

	// Datos desnormalizados desde el cliente ya resuelto, sin otra consulta.
	cotizacion.ClienteNombres = cliente.Nombres
	cotizacion.ClienteApellidos = cliente.Apellidos
	cotizacion.ClienteEmail = cliente.Email
	return toCotizacionResponse(cotizacion), nil
}

// ListarPorCliente lista las cotizaciones del cliente en forma paginada.
// Listar para un cliente inexistente es un error, no una página vacía. El
// lookup del cliente, el conteo y la página corren en una sola transacción de
// lectura. El tamaño pedido se recorta a MaxPageSize; el índice de página
// pasa intacto.
func (uc *CotizacionUseCase) ListarPorCliente(ctx context.Context, clienteID int64, page repository.PageQuery) (*dto.PageResponse[dto.CotizacionResponse], error) {
	if page.Size <= 0 {
		page.Size = DefaultPageSize
	}
	if page.Size > MaxPageSize {
		page.Size = MaxPageSize
	}

	var items []*entity.Cotizacion
	var total int64
	err := uc.txRunner.RunCotizacionLectura(ctx, func(
		clienteRepo repository.ClienteRepository,
		cotizacionRepo repository.CotizacionRepository,
	) error {
		cliente, err := clienteRepo.GetByID(clienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.NewNotFound("Cliente", clienteID)
		}
		items, total, err = cotizacionRepo.ListByCliente(clienteID, page)
		return err
	})
	if err != nil {
		return nil, err
	}

	content := make([]dto.CotizacionResponse, 0, len(items))
	for _, c := range items {
		content = append(content, *toCotizacionResponse(c))
	}
	resp := dto.NewPageResponse(content, page.Page, page.Size, total)
	return &resp, nil
}

func toCotizacionResponse(c *entity.Cotizacion) *dto.CotizacionResponse {
	return &dto.CotizacionResponse{
		ID:                c.ID,
		ClienteID:         c.ClienteID,
		Total:             dto.NewMonto(c.Total),
		Estado:            string(c.Estado),
		SalesforceQuoteID: c.SalesforceQuoteID,
		CreatedAt:         c.CreatedAt,
		ClienteNombre:     c.ClienteNombreCompleto(),
		ClienteEmail:      c.ClienteEmail,
	}
}
