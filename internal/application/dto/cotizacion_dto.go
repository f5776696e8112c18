package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CotizacionCreateRequest body para POST /api/cotizaciones.
// El estado nunca lo decide el caller: toda cotización nace CREADA.
type CotizacionCreateRequest struct {
	ClienteID int64           `json:"clienteId" validate:"required"`
	Total     decimal.Decimal `json:"total"`
}

// Validar aplica presencia del clienteId y positividad estricta del total.
// El total se valida a mano porque validator no inspecciona decimal.Decimal.
func (r *CotizacionCreateRequest) Validar() error {
	if err := validarStruct(r); err != nil {
		return err
	}
	if !r.Total.IsPositive() {
		return &ValidationError{Mensaje: "El total debe ser mayor a 0"}
	}
	return nil
}

// Monto total monetario en respuestas. Sale siempre con dos decimales fijos,
// igual que el NUMERIC(15,2) de la base, aunque el decimal venga de un entero
// o con otro exponente.
type Monto struct {
	decimal.Decimal
}

// NewMonto envuelve un decimal para respuesta.
func NewMonto(d decimal.Decimal) Monto { return Monto{Decimal: d} }

func (m Monto) String() string { return m.Decimal.StringFixed(2) }

// MarshalJSON emite el monto como string con dos decimales.
func (m Monto) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Decimal.StringFixed(2) + `"`), nil
}

// CotizacionResponse cotización en respuestas, con nombre y email del cliente
// desnormalizados para no requerir otra consulta.
type CotizacionResponse struct {
	ID                int64     `json:"id"`
	ClienteID         int64     `json:"clienteId"`
	Total             Monto     `json:"total"`
	Estado            string    `json:"estado"`
	SalesforceQuoteID string    `json:"salesforceQuoteId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	ClienteNombre     string    `json:"clienteNombre"`
	ClienteEmail      string    `json:"clienteEmail"`
}
