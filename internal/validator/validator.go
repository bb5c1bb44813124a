package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seatmap/api"
)

const (
	ErrRequired       = "is required"
	ErrEmail          = "must be a valid email address"
	ErrMinLength      = "must contain at least %s items"
	ErrMaxLength      = "must contain at most %s items"
	ErrMinValue       = "must be greater than or equal to %s"
	ErrMaxValue       = "must be less than or equal to %s"
	ErrRowLabelStyle  = "must be one of numeric, letters or seat"
	ErrLabelPosition  = "must be one of leading, trailing, both or none"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("row_labels", validateRowLabelStyle)
	validator.RegisterValidation("label_position", validateLabelPosition)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func validateRowLabelStyle(fl validator.FieldLevel) bool {
	style, ok := fl.Field().Interface().(api.RowLabelStyle)
	if !ok {
		return false
	}

	return style == api.RowLabelStyleNumeric || style == api.RowLabelStyleLetters || style == api.RowLabelStyleSeat
}

func validateLabelPosition(fl validator.FieldLevel) bool {
	pos, ok := fl.Field().Interface().(api.LabelPosition)
	if !ok {
		return false
	}

	switch pos {
	case api.Leading, api.Trailing, api.Both, api.None:
		return true
	default:
		return false
	}
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		if isCollection(err.Kind()) {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if isCollection(err.Kind()) {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "row_labels":
		return ErrRowLabelStyle
	case "label_position":
		return ErrLabelPosition
	default:
		return ErrDefaultInvalid
	}
}

func isCollection(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map || kind == reflect.String
}
