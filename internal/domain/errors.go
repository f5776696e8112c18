package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrClienteDuplicado = errors.New("ya existe un cliente con ese email")
)

// NotFoundError indica que un recurso referenciado por id no existe.
// Envuelve ErrNotFound para que errors.Is siga funcionando en los handlers.
type NotFoundError struct {
	Recurso string
	ID      int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado con id: %d", e.Recurso, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError para el recurso indicado.
func NewNotFound(recurso string, id int64) error {
	return &NotFoundError{Recurso: recurso, ID: id}
}

// DuplicateEmailError indica que el email ya pertenece a otro cliente.
// Se produce tanto en el pre-chequeo como al traducir la violación 23505
// del insert (carrera entre chequeo e insert).
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("ya existe un cliente con el email: %s", e.Email)
}

func (e *DuplicateEmailError) Unwrap() error { return ErrDuplicate }
