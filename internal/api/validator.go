package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports field errors by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidationMessage turns a Validate error into a client message. Missing
// fields collapse into missing; any other rule names the first bad field.
func ValidationMessage(err error, missing string) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return missing
	}
	for _, fe := range errs {
		if fe.Tag() != "required" {
			return fmt.Sprintf("Invalid value for %s", fe.Field())
		}
	}
	return missing
}
