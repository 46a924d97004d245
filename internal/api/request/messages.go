package request

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// attribute turns a field key into the words used in messages:
// "client_id" reads "client id" and "items.0.rate" reads "items.0.rate".
func attribute(field string) string {
	if strings.Contains(field, ".") {
		return field
	}
	return strings.ReplaceAll(field, "_", " ")
}

func isNumeric(fe validator.FieldError) bool {
	switch fe.Kind().String() {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64":
		return true
	}
	return false
}

// message renders one rule failure in the CRM's wording.
func message(fe validator.FieldError) string {
	attr := attribute(fieldKey(fe))
	switch strings.TrimPrefix(fe.Tag(), "optional_") {
	case "required", "required_without", "required_if", "notblank":
		return fmt.Sprintf("The %s field is required.", attr)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", attr)
	case "url", "http_url":
		return fmt.Sprintf("The %s format is invalid.", attr)
	case "max", "lte":
		if isNumeric(fe) {
			return fmt.Sprintf("The %s may not be greater than %s.", attr, fe.Param())
		}
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("The %s may not have more than %s items.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s characters.", attr, fe.Param())
	case "min", "gte":
		if isNumeric(fe) {
			return fmt.Sprintf("The %s must be at least %s.", attr, fe.Param())
		}
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("The %s must have at least %s items.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s characters.", attr, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", attr, fe.Param())
	case "oneof", "model_type", "proposal_model_type":
		return fmt.Sprintf("The selected %s is invalid.", attr)
	case "date":
		return fmt.Sprintf("The %s is not a valid date.", attr)
	case "timestamp":
		return fmt.Sprintf("The %s is not a valid date time.", attr)
	case "len":
		return fmt.Sprintf("The %s must be %s characters.", attr, fe.Param())
	case "currency":
		return fmt.Sprintf("The %s must be a 3 letter currency code.", attr)
	default:
		return fmt.Sprintf("The %s is invalid.", attr)
	}
}
