package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

// Validator wraps the go-playground validator with the domain tags registered
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers "subject" (a known subject key) and "apsvariant"
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
		return scoring.Subject(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("apsvariant", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || scoring.Variant(s).Valid()
	})
	return &Validator{validate: v}
}

func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validator errors to a field to message map
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, e := range validationErrs {
		field := fieldName(e)
		switch e.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", e.Field())
		case "email":
			out[field] = "Invalid email format"
		case "min":
			out[field] = fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
		case "max":
			out[field] = fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
		case "gte":
			out[field] = fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
		case "lte":
			out[field] = fmt.Sprintf("%s must be less than or equal to %s", e.Field(), e.Param())
		case "oneof":
			out[field] = fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
		case "subject":
			out[field] = fmt.Sprintf("unknown subject %q", e.Value())
		case "apsvariant":
			out[field] = fmt.Sprintf("unknown APS variant %q", e.Value())
		default:
			out[field] = fmt.Sprintf("%s is invalid", e.Field())
		}
	}
	return out
}

// fieldName keeps map keys visible, e.g. "marks[latin]"
func fieldName(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

// SanitizeString removes null bytes and surrounding whitespace
func SanitizeString(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
