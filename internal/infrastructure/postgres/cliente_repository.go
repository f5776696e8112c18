package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tienda/cotizaciones-api/internal/domain"
	"github.com/tienda/cotizaciones-api/internal/domain/entity"
	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente y asigna ID y CreatedAt. La constraint
// uk_cliente_email es la autoridad final de unicidad: un 23505 se devuelve
// como domain.ErrDuplicate.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	cliente.CreatedAt = time.Now()
	query := `
		INSERT INTO cliente (nombres, apellidos, email, telefono, documento, salesforce_account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		cliente.Nombres, cliente.Apellidos, cliente.Email,
		nullIfEmpty(cliente.Telefono), nullIfEmpty(cliente.Documento),
		nullIfEmpty(cliente.SalesforceAccountID), cliente.CreatedAt,
	).Scan(&cliente.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil si no existe.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `
		SELECT id, nombres, apellidos, email, telefono, documento, salesforce_account_id, created_at
		FROM cliente WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get cliente")
}

// GetByEmail obtiene un cliente por email normalizado. Devuelve nil si no existe.
func (r *ClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombres, apellidos, email, telefono, documento, salesforce_account_id, created_at
		FROM cliente WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get cliente by email")
}

func (r *ClienteRepo) scanOne(row pgx.Row, op string) (*entity.Cliente, error) {
	var c entity.Cliente
	var telefono, documento, salesforceID *string
	err := row.Scan(
		&c.ID, &c.Nombres, &c.Apellidos, &c.Email,
		&telefono, &documento, &salesforceID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.Telefono = derefStr(telefono)
	c.Documento = derefStr(documento)
	c.SalesforceAccountID = derefStr(salesforceID)
	return &c, nil
}
