package dto

import (
	"strings"
	"time"
)

// ClienteCreateRequest body para POST /api/clientes.
type ClienteCreateRequest struct {
	Nombres   string `json:"nombres" validate:"notblank,max=100"`
	Apellidos string `json:"apellidos" validate:"notblank,max=100"`
	Email     string `json:"email" validate:"notblank,email,max=150"`
	Telefono  string `json:"telefono,omitempty" validate:"omitempty,max=30"`
	Documento string `json:"documento,omitempty" validate:"omitempty,max=50"`
}

// Validar aplica las reglas de presencia, longitud y formato del contrato.
// El formato del email se evalúa sobre una copia sin espacios alrededor; el
// valor original sigue intacto para que la normalización definitiva
// (trim + minúsculas) la haga el caso de uso antes del chequeo de duplicados.
func (r *ClienteCreateRequest) Validar() error {
	c := *r
	c.Email = strings.TrimSpace(c.Email)
	return validarStruct(&c)
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID                  int64     `json:"id"`
	Nombres             string    `json:"nombres"`
	Apellidos           string    `json:"apellidos"`
	Email               string    `json:"email"`
	Telefono            string    `json:"telefono,omitempty"`
	Documento           string    `json:"documento,omitempty"`
	SalesforceAccountID string    `json:"salesforceAccountId,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
