// Package validation checks request payloads against the `validate` struct
// tags and turns failures into a message a client can act on.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DefaultMessage is used when an error carries no field detail.
const DefaultMessage = "Validation failed"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Result is the outcome of validating a payload.
type Result struct {
	Success bool
	Message string
}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	})
	return validate
}

// jsonFieldName reports fields by their json name so messages match the
// payload the client sent.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// Struct runs the tag rules on v and returns the raw validator error.
func Struct(v any) error {
	return instance().Struct(v)
}

// Validate checks payload and reports the first failure of every field.
func Validate(payload any) Result {
	if err := Struct(payload); err != nil {
		return Result{Message: Message(err)}
	}
	return Result{Success: true}
}

// Message converts a validator error into a single readable sentence.
func Message(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return DefaultMessage
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Field()+" "+describe(fieldErr))
	}
	return strings.Join(messages, ", ")
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "required_if":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("must not exceed %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	}
	if fieldErr.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fieldErr.Tag(), fieldErr.Param())
	}
	return "failed " + fieldErr.Tag()
}
