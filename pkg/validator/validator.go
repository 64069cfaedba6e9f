package validator

import (
	"reflect"
	"regexp"
	"strings"

	"clinic-prescription-api/pkg/response"

	"github.com/go-playground/validator/v10"
)

// hhmmRegex accepts 24-hour clock times: 00-23 hours, 00-59 minutes.
var hhmmRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report violations under the JSON field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRegex.MatchString(fl.Field().String())
	})

	// Mobile numbers are integers whose decimal representation is exactly
	// 10 digits
	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 1_000_000_000 && n <= 9_999_999_999
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors turns validator violations into the field-level
// detail list returned to the client.
func (cv *CustomValidator) FormatValidationErrors(err error) []response.FieldError {
	var details []response.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return details
	}

	for _, e := range validationErrors {
		field := e.Namespace()
		// Strip the leading struct name from the path
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}

		var message string
		switch e.Tag() {
		case "required":
			message = field + " is required"
		case "required_if":
			message = "Custom time is required when timing type is CUSTOM"
		case "email":
			message = field + " must be a valid email address"
		case "min":
			message = field + " must be at least " + e.Param() + " characters"
		case "max":
			message = field + " must be at most " + e.Param() + " characters"
		case "gte":
			message = field + " must be greater than or equal to " + e.Param()
		case "lte":
			message = field + " must be less than or equal to " + e.Param()
		case "oneof":
			message = field + " must be one of " + e.Param()
		case "hhmm":
			message = "Invalid time format. Use HH:MM"
		case "mobile":
			message = field + " must be exactly 10 digits"
		default:
			message = field + " is invalid"
		}

		details = append(details, response.FieldError{Field: field, Message: message})
	}

	return details
}
