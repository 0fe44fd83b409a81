package utils

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations registers custom validation rules
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("timeformat", validateTimeFormat)
	v.RegisterValidation("dateformat", validateDateFormat)
	v.RegisterValidation("decimalstr", validateDecimalString)
}

// validateTimeFormat checks if string is valid HH:MM format
func validateTimeFormat(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func validateDateFormat(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// validateDecimalString accepts non-negative decimal numbers written as strings.
func validateDecimalString(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "required_if":
				messages = append(messages, field+" is required when "+fe.Param())
			case "email":
				messages = append(messages, "invalid email format")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param())
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param())
			case "gte":
				messages = append(messages, field+" must be greater than or equal to "+fe.Param())
			case "lte":
				messages = append(messages, field+" must be less than or equal to "+fe.Param())
			case "numeric":
				messages = append(messages, field+" must contain only numbers")
			case "timeformat":
				messages = append(messages, field+" must be in HH:MM format (e.g., 14:00)")
			case "dateformat":
				messages = append(messages, field+" must be in YYYY-MM-DD format")
			case "decimalstr":
				messages = append(messages, field+" must be a non-negative number")
			case "oneof":
				messages = append(messages, field+" must be one of: "+fe.Param())
			case "uuid4", "uuid":
				messages = append(messages, field+" must be a valid id")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return "malformed JSON body"
	case errors.As(err, &typeErr):
		return typeErr.Field + " has the wrong type"
	}
	return err.Error()
}
