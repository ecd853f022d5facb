package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	roothelpers "github.com/rocbird/talentos_api/helpers"
	"github.com/rocbird/talentos_api/models"
	"github.com/rocbird/talentos_api/models/requestresponse"
)

var validate = buildValidator()

func buildValidator() *validator.Validate {
	v := validator.New()

	// En los detalles de error se reporta el nombre de campo del JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "seniority", func(fl validator.FieldLevel) bool {
		return models.Seniority(fl.Field().String()).Valid()
	})
	mustRegister(v, "estado_talento", func(fl validator.FieldLevel) bool {
		return models.EstadoTalento(fl.Field().String()).Valid()
	})
	mustRegister(v, "tipo_interaccion", func(fl validator.FieldLevel) bool {
		return models.TipoInteraccion(fl.Field().String()).Valid()
	})
	mustRegister(v, "estado_interaccion", func(fl validator.FieldLevel) bool {
		return models.EstadoInteraccion(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate aplica las reglas declaradas en el struct y devuelve un AppError
// 400 con el detalle de todos los campos violados, o nil si todo es válido.
func Validate(input interface{}) *roothelpers.AppError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return roothelpers.AsAppError(err, "error validando la petición")
	}

	details := make([]requestresponse.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = strings.ToLower(fe.StructField())
		}
		details = append(details, requestresponse.ErrorDetail{
			Field:   field,
			Message: messageFor(fe),
		})
	}

	return roothelpers.NewAppError(
		http.StatusBadRequest,
		roothelpers.CodeValidation,
		"Datos de entrada inválidos",
		nil,
	).WithDetails(details)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("no puede exceder %s caracteres", fe.Param())
		}
		return fmt.Sprintf("no puede exceder %s", fe.Param())
	case "email":
		return "email inválido"
	case "uuid4":
		return "identificador inválido"
	case "seniority":
		return "debe ser uno de: " + models.SeniorityList()
	case "estado_talento":
		return "debe ser uno de: ACTIVO, INACTIVO"
	case "tipo_interaccion":
		return "debe ser uno de: " + models.TipoInteraccionList()
	case "estado_interaccion":
		return "debe ser uno de: INICIADA, EN_PROGRESO, FINALIZADA, CANCELADA"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "valor inválido"
	}
}
