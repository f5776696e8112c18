package entity

import (
	"strings"
	"time"
)

// Cliente representa un cliente de la tienda.
// Email se guarda normalizado (trim + minúsculas) y es único en todo el sistema.
// SalesforceAccountID es un campo de paso: se almacena y expone pero este
// servicio nunca lo escribe ni lo sincroniza.
type Cliente struct {
	ID                  int64
	Nombres             string
	Apellidos           string
	Email               string
	Telefono            string
	Documento           string
	SalesforceAccountID string
	CreatedAt           time.Time
}

// NombreCompleto devuelve "nombres apellidos" para mostrar en respuestas
// desnormalizadas (seguro ante campos vacíos).
func (c *Cliente) NombreCompleto() string {
	return strings.TrimSpace(c.Nombres + " " + c.Apellidos)
}
