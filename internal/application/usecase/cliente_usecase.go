package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/tienda/cotizaciones-api/internal/application/dto"
	"github.com/tienda/cotizaciones-api/internal/domain"
	"github.com/tienda/cotizaciones-api/internal/domain/entity"
	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

// ClienteUseCase casos de uso para clientes.
type ClienteUseCase struct {
	repo     repository.ClienteRepository
	txRunner TxRunner
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, txRunner TxRunner) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, txRunner: txRunner}
}

// Crear crea un nuevo cliente. Normaliza el email (trim + minúsculas) y los
// demás campos de texto (trim), rechaza duplicados por email con un
// pre-chequeo y deja la constraint única de la base como árbitro final: si el
// insert pierde la carrera contra otro create, el 23505 se traduce al mismo
// error de duplicado que habría producido el pre-chequeo.
func (uc *ClienteUseCase) Crear(ctx context.Context, in dto.ClienteCreateRequest) (*dto.ClienteResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	cliente := &entity.Cliente{
		Nombres:   strings.TrimSpace(in.Nombres),
		Apellidos: strings.TrimSpace(in.Apellidos),
		Email:     email,
		Telefono:  strings.TrimSpace(in.Telefono),
		Documento: strings.TrimSpace(in.Documento),
	}

	err := uc.txRunner.RunCliente(ctx, func(clienteRepo repository.ClienteRepository) error {
		existente, err := clienteRepo.GetByEmail(email)
		if err != nil {
			return err
		}
		if existente != nil {
			return &domain.DuplicateEmailError{Email: email}
		}
		return clienteRepo.Create(cliente)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Carrera entre pre-chequeo e insert: misma clase de error.
			return nil, &domain.DuplicateEmailError{Email: email}
		}
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// ObtenerPorID obtiene un cliente por ID. Operación de solo lectura.
func (uc *ClienteUseCase) ObtenerPorID(id int64) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.NewNotFound("Cliente", id)
	}
	return toClienteResponse(cliente), nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:                  c.ID,
		Nombres:             c.Nombres,
		Apellidos:           c.Apellidos,
		Email:               c.Email,
		Telefono:            c.Telefono,
		Documento:           c.Documento,
		SalesforceAccountID: c.SalesforceAccountID,
		CreatedAt:           c.CreatedAt,
	}
}
