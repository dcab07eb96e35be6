package http

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator devuelve la instancia compartida. Los campos se reportan con
// su nombre JSON (o de query string) para que coincidan con lo que envía el cliente.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
	})
	return validate
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// validateRequest valida payload y devuelve nil si es correcto. En caso
// contrario arma un ErrorResponse VALIDATION con campo → regla incumplida.
func validateRequest(payload any) *dto.ErrorResponse {
	err := getValidator().Struct(payload)
	if err == nil {
		return nil
	}
	resp := &dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		resp.Fields = make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			resp.Fields[fieldPath(fe)] = fe.Tag()
		}
	}
	return resp
}

// fieldPath quita el nombre del struct raíz: "IncomingTransactionRequest.products[0].product_id"
// se reporta como "products[0].product_id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
