package repository

import "github.com/tienda/cotizaciones-api/internal/domain/entity"

// SortKey criterio de ordenamiento (campo del recurso, no columna SQL).
type SortKey struct {
	Campo string
	Desc  bool
}

// PageQuery página solicitada a un listado: índice base cero, tamaño y
// criterios de orden aplicados en el orden listado.
type PageQuery struct {
	Page int
	Size int
	Sort []SortKey
}

// Offset desplazamiento en filas para la página solicitada.
func (p PageQuery) Offset() int {
	return p.Page * p.Size
}

// CotizacionRepository define el puerto de persistencia para Cotizacion.
type CotizacionRepository interface {
	// Create inserta la cotización y asigna ID y CreatedAt.
	Create(cotizacion *entity.Cotizacion) error
	// ListByCliente devuelve la página de cotizaciones del cliente (con los
	// datos del cliente ya unidos) y el total de elementos sin paginar.
	ListByCliente(clienteID int64, page PageQuery) ([]*entity.Cotizacion, int64, error)
}
