package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Custom validation tags
const (
	TagNotBlank = "notblank"
)

// NotBlank fails for strings that are empty or contain only whitespace
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimFunc(field.String(), unicode.IsSpace) != ""
}

// Register adds the custom rules to a validator instance
func Register(v *validator.Validate) error {
	return v.RegisterValidation(TagNotBlank, NotBlank)
}
