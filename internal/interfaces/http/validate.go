package http

import (
	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; los tags viven en los structs de dto.
var validate = validator.New()

// validateStruct ejecuta las reglas de validación del DTO en la frontera HTTP.
func validateStruct(in interface{}) error {
	return validate.Struct(in)
}
