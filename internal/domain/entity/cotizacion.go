package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoCotizacion estado del ciclo de vida de una cotización.
// Se persiste como texto para que el orden de los valores no importe.
type EstadoCotizacion string

const (
	EstadoCreada    EstadoCotizacion = "CREADA"
	EstadoEnviada   EstadoCotizacion = "ENVIADA"
	EstadoAprobada  EstadoCotizacion = "APROBADA"
	EstadoRechazada EstadoCotizacion = "RECHAZADA"
)

// EsValido indica si el valor pertenece al conjunto cerrado de estados.
func (e EstadoCotizacion) EsValido() bool {
	switch e {
	case EstadoCreada, EstadoEnviada, EstadoAprobada, EstadoRechazada:
		return true
	}
	return false
}

// Cotizacion representa una propuesta de precio que pertenece a exactamente
// un Cliente. Total siempre es mayor a 0 (NUMERIC(15,2) en la base).
// SalesforceQuoteID es un campo de paso, nunca escrito por este servicio.
type Cotizacion struct {
	ID                int64
	ClienteID         int64
	Total             decimal.Decimal
	Estado            EstadoCotizacion
	SalesforceQuoteID string
	CreatedAt         time.Time

	// Datos del cliente dueño, poblados por el JOIN del listado para evitar
	// una segunda ida a la base.
	ClienteNombres   string
	ClienteApellidos string
	ClienteEmail     string
}

// ClienteNombreCompleto devuelve el nombre desnormalizado del dueño.
func (c *Cotizacion) ClienteNombreCompleto() string {
	cli := Cliente{Nombres: c.ClienteNombres, Apellidos: c.ClienteApellidos}
	return cli.NombreCompleto()
}
