package repository

import "github.com/tienda/cotizaciones-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	// Create inserta el cliente y asigna ID y CreatedAt.
	// Devuelve domain.ErrDuplicate si el email viola la constraint única.
	Create(cliente *entity.Cliente) error
	// GetByID devuelve nil (sin error) si el cliente no existe.
	GetByID(id int64) (*entity.Cliente, error)
	// GetByEmail busca por email ya normalizado. Devuelve nil si no existe.
	GetByEmail(email string) (*entity.Cliente, error)
}
