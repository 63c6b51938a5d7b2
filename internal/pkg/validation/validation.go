// Package validation valida os DTOs de entrada com go-playground/validator
// e traduz as falhas para ValidationError com a lista de campos.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "mottufind/internal/errors"
)

// placaPattern aceita o padrão antigo (ABC1234) e o Mercosul (ABC1D23).
var placaPattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("placa", func(fl validator.FieldLevel) bool {
		return placaPattern.MatchString(fl.Field().String())
	})
	// maxbytes limita o tamanho em bytes, não em runas (o bcrypt usa no máximo 72 bytes).
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

// ValidPlaca informa se a placa (já normalizada) tem formato válido.
func ValidPlaca(placa string) bool {
	return placaPattern.MatchString(placa)
}

// Struct valida v e devolve *apperror.ValidationError com um FieldError por campo inválido.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInternalError("falha ao validar payload", err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{Campo: fe.Field(), Mensagem: message(fe)})
	}
	return apperror.NewFieldValidationError("Dados inválidos.", fields...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "placa":
		return "placa inválida, use o formato ABC1234 ou ABC1D23"
	case "oneof":
		return fmt.Sprintf("valor deve ser um de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("tamanho mínimo é %s", fe.Param())
	case "max":
		return fmt.Sprintf("tamanho máximo é %s", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("tamanho máximo é %s bytes", fe.Param())
	case "len":
		return fmt.Sprintf("deve ter exatamente %s caracteres", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("deve ser menor ou igual a %s", fe.Param())
	case "alpha":
		return "deve conter apenas letras"
	}
	return fmt.Sprintf("falhou na regra '%s'", fe.Tag())
}
