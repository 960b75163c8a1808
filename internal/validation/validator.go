// Package validation checks request bodies at the HTTP boundary.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "userservice/internal/errors"
)

// messages holds the client-facing text per JSON field and failed tag.
var messages = map[string]map[string]string{
	"name": {
		"required": "Name cannot be blank",
		"notblank": "Name cannot be blank",
		"min":      "Name must be between 2 and 50 characters",
		"max":      "Name must be between 2 and 50 characters",
	},
	"email": {
		"required": "Email cannot be blank",
		"notblank": "Email cannot be blank",
		"email":    "Email should be valid",
	},
	"age": {
		"required": "Age is required",
		"min":      "Age must be at least 1",
		"max":      "Age must not exceed 150",
	},
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New builds a validator that reports JSON field names and knows "notblank".
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("notblank", notBlank)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
// Field failures come back as *errors.ValidationError.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := details[fe.Field()]; seen {
			continue
		}
		details[fe.Field()] = message(fe.Field(), fe.Tag(), fe.Param())
	}
	return apperrors.NewValidationError(details)
}

func message(field, tag, param string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	if param != "" {
		return fmt.Sprintf("%s failed the %s=%s rule", field, tag, param)
	}
	return fmt.Sprintf("%s failed the %s rule", field, tag)
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}
