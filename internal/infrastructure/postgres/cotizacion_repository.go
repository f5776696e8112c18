package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tienda/cotizaciones-api/internal/domain/entity"
	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

var _ repository.CotizacionRepository = (*CotizacionRepo)(nil)

// CotizacionRepo implementación de CotizacionRepository (usable con pool o tx).
type CotizacionRepo struct {
	q Querier
}

// NewCotizacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCotizacionRepository(q Querier) *CotizacionRepo {
	return &CotizacionRepo{q: q}
}

// Create persiste una nueva cotización y asigna ID y CreatedAt.
func (r *CotizacionRepo) Create(cotizacion *entity.Cotizacion) error {
	cotizacion.CreatedAt = time.Now()
	query := `
		INSERT INTO cotizacion (cliente_id, total, estado, salesforce_quote_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		cotizacion.ClienteID, cotizacion.Total, string(cotizacion.Estado),
		nullIfEmpty(cotizacion.SalesforceQuoteID), cotizacion.CreatedAt,
	).Scan(&cotizacion.ID)
	if err != nil {
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	return nil
}

// Columnas ordenables expuestas al caller, mapeadas a columnas reales. Nada
// fuera de esta lista llega al ORDER BY.
var sortColumns = map[string]string{
	"id":        "q.id",
	"total":     "q.total",
	"estado":    "q.estado",
	"createdAt": "q.created_at",
}

// orderByClause arma el ORDER BY con los criterios del caller en el orden
// listado. Campos desconocidos se descartan; sin criterios válidos no se
// agrega orden implícito.
func orderByClause(sort []repository.SortKey) string {
	parts := make([]string, 0, len(sort))
	for _, k := range sort {
		col, ok := sortColumns[k.Campo]
		if !ok {
			continue
		}
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// ListByCliente devuelve la página de cotizaciones del cliente junto con el
// total de elementos. El JOIN trae nombre y email del cliente en la misma
// consulta para poblar la respuesta desnormalizada.
func (r *CotizacionRepo) ListByCliente(clienteID int64, page repository.PageQuery) ([]*entity.Cotizacion, int64, error) {
	var total int64
	countQuery := `SELECT count(*) FROM cotizacion WHERE cliente_id = $1`
	if err := r.q.QueryRow(context.Background(), countQuery, clienteID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cotizaciones: %w", err)
	}

	query := `
		SELECT q.id, q.cliente_id, q.total, q.estado, q.salesforce_quote_id, q.created_at,
		       c.nombres, c.apellidos, c.email
		FROM cotizacion q
		JOIN cliente c ON c.id = q.cliente_id
		WHERE q.cliente_id = $1` + orderByClause(page.Sort) + `
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clienteID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cotizacion
	for rows.Next() {
		var c entity.Cotizacion
		var estado string
		var salesforceID *string
		if err := rows.Scan(
			&c.ID, &c.ClienteID, &c.Total, &estado, &salesforceID, &c.CreatedAt,
			&c.ClienteNombres, &c.ClienteApellidos, &c.ClienteEmail,
		); err != nil {
			return nil, 0, fmt.Errorf("scan cotizacion: %w", err)
		}
		c.Estado = entity.EstadoCotizacion(estado)
		c.SalesforceQuoteID = derefStr(salesforceID)
		list = append(list, &c)
	}
	return list, total, rows.Err()
}
