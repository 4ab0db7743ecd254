package dialog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("filter_pattern", validateFilterPattern)
	return v
}

// ValidationError reports a Params field that cannot be applied to a dialog.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid dialog parameter %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid dialog parameters: %s", e.Message)
}

// Validate checks Params before any native call is made. Sessions run it
// first, so a bad configuration never reaches the native layer.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, e := range validationErrors {
				return &ValidationError{
					Field:   e.Field(),
					Message: fmt.Sprintf("validation failed on tag '%s'", e.Tag()),
					Value:   e.Value(),
				}
			}
		}
		return err
	}
	if len(p.FileTypes) > 0 && p.FileTypeIndex > uint32(len(p.FileTypes)) {
		return &ValidationError{
			Field:   "FileTypeIndex",
			Message: fmt.Sprintf("index %d exceeds the %d configured filters", p.FileTypeIndex, len(p.FileTypes)),
			Value:   p.FileTypeIndex,
		}
	}
	return nil
}

// validateFilterPattern accepts semi-colon separated glob patterns such as
// "*.exe;*.com;*.scr". Empty segments are rejected.
func validateFilterPattern(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // required is checked separately
	}
	for _, segment := range strings.Split(value, ";") {
		if strings.TrimSpace(segment) == "" {
			return false
		}
	}
	return true
}
