package helper

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"civicdata_backend/internals/constants"
)

var validate = newValidator()

// Nepal mobile numbers: known operator prefix + 7 digits.
var phoneNumberRegex = regexp.MustCompile(`^(984|985|986|974|975|980|981|982|961|988|972|963)\d{7}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// error keys use json tag names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("nepal_phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return phoneNumberRegex.MatchString(s)
	})

	_ = v.RegisterValidation("country_code", func(fl validator.FieldLevel) bool {
		return constants.IsValidCountryCode(fl.Field().String())
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return constants.IsValidRole(fl.Field().String())
	})

	return v
}

// IsValidPhoneNumber is the same check exposed for non-struct call sites.
func IsValidPhoneNumber(s string) bool {
	return phoneNumberRegex.MatchString(s)
}

// ValidateStruct runs validator.v10 over s and returns field -> messages.
// Nested struct fields come back namespaced ("home_address.city").
// Returns nil when everything passes.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"non_field_errors": {err.Error()}}
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := fe.Namespace()
		// drop the root struct segment
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		fields[key] = append(fields[key], messageForTag(fe))
	}
	return fields
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "min":
		return "Must be at least " + fe.Param() + "."
	case "max":
		return "Must be at most " + fe.Param() + "."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "datetime":
		return "Enter a valid date in YYYY-MM-DD format."
	case "uuid":
		return "Enter a valid identifier."
	case "country_code":
		return "Enter a valid ISO country code."
	case "role":
		return "Unknown role."
	case "nepal_phone":
		return "Enter a valid Nepal mobile number."
	default:
		return "Invalid value."
	}
}

/* ===============================
   Error collector for cross-field rules
=================================*/

type ErrorCollector struct {
	fields map[string][]string
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{fields: map[string][]string{}}
}

// MergeStruct folds the result of ValidateStruct into the collector.
func (ec *ErrorCollector) MergeStruct(s any) {
	for field, msgs := range ValidateStruct(s) {
		ec.fields[field] = append(ec.fields[field], msgs...)
	}
}

func (ec *ErrorCollector) Add(field, message string) {
	ec.fields[field] = append(ec.fields[field], message)
}

func (ec *ErrorCollector) AddNonField(message string) {
	ec.Add("non_field_errors", message)
}

func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.fields) > 0
}

// Err returns a *ValidationError when anything was collected, else nil.
func (ec *ErrorCollector) Err() error {
	if len(ec.fields) == 0 {
		return nil
	}
	return NewValidationError(ec.fields)
}
