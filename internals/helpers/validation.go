package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap converte validator.ValidationErrors no formato
// field -> mensagens usado pelo JsonValidationError.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{"entrada inválida"}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return "abaixo do tamanho mínimo (" + fe.Param() + ")"
	case "max":
		return "acima do tamanho máximo (" + fe.Param() + ")"
	case "email":
		return "e-mail inválido"
	case "oneof":
		return "valor fora da lista permitida"
	case "uuid":
		return "identificador inválido"
	default:
		return "inválido (" + fe.Tag() + ")"
	}
}
