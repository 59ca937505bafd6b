package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// handlePattern accepts an optional "@" followed by a chat username
var handlePattern = regexp.MustCompile(`^@?[\p{L}\p{N}_.]{1,64}$`)

// itemIDPattern matches catalog identifiers
var itemIDPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("handle", validateHandle)
	_ = v.RegisterValidation("itemid", validateItemID)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "handle":
			errs[field] = "Invalid username"
		case "itemid":
			errs[field] = "Invalid item id"
		case "gt", "gte":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "lte", "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateHandle(fl validator.FieldLevel) bool {
	h := strings.TrimSpace(fl.Field().String())
	if h == "" {
		return true
	}
	return handlePattern.MatchString(h)
}

func validateItemID(fl validator.FieldLevel) bool {
	return itemIDPattern.MatchString(fl.Field().String())
}
