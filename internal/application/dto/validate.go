package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/tienda/cotizaciones-api/internal/domain"
)

// validate instancia compartida; los validadores de go-playground son seguros
// para uso concurrente.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank: rechaza cadenas vacías o de solo espacios (equivale a required
	// pero para campos que además se normalizan con trim).
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ValidationError falla de validación del contrato de entrada. Nunca llega a
// persistencia: se rechaza en el boundary antes de invocar el caso de uso.
type ValidationError struct {
	Mensaje string
}

func (e *ValidationError) Error() string { return e.Mensaje }

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// validarStruct ejecuta las reglas de los tags `validate` y traduce cada
// violación a su mensaje en español.
func validarStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return &ValidationError{Mensaje: err.Error()}
	}
	mensajes := make([]string, 0, len(errs))
	for _, fe := range errs {
		mensajes = append(mensajes, mensajeCampo(fe))
	}
	return &ValidationError{Mensaje: strings.Join(mensajes, "; ")}
}

// mensajeCampo mensajes por campo y regla, alineados con el contrato.
func mensajeCampo(fe validator.FieldError) string {
	switch fe.Field() {
	case "Nombres":
		if fe.Tag() == "max" {
			return "Los nombres no pueden exceder 100 caracteres"
		}
		return "Los nombres son obligatorios"
	case "Apellidos":
		if fe.Tag() == "max" {
			return "Los apellidos no pueden exceder 100 caracteres"
		}
		return "Los apellidos son obligatorios"
	case "Email":
		switch fe.Tag() {
		case "max":
			return "El email no puede exceder 150 caracteres"
		case "email":
			return "El email no tiene un formato válido"
		}
		return "El email es obligatorio"
	case "Telefono":
		return "El teléfono no puede exceder 30 caracteres"
	case "Documento":
		return "El documento no puede exceder 50 caracteres"
	case "ClienteID":
		return "El clienteId es obligatorio"
	}
	return "El campo " + fe.Field() + " es inválido"
}
