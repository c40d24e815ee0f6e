package types

import (
	"github.com/go-playground/validator/v10"
)

// TypeValidation accepts an empty type (inferred from the value) or a known tag.
func TypeValidation(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || Type(s).Valid()
}

func RegisterTypeValidation(v *validator.Validate) {
	v.RegisterValidation("type", TypeValidation)
}
