// Package validation holds the single rule set for customer and address
// input. The service layer uses the first-failure mode before touching the
// store; form feedback uses the aggregated mode.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Raymond9734/customer-records-backend/internal/models"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?\d{7,15}$`)
	pinCodePattern = regexp.MustCompile(`^\d{4,10}$`)
)

// messages maps "<json field>.<tag>" to the message shown to the user.
var messages = map[string]string{
	"first_name.required":      "First name is required",
	"first_name.min":           "First name must be at least 2 characters",
	"last_name.required":       "Last name is required",
	"last_name.min":            "Last name must be at least 2 characters",
	"phone_number.required":    "Phone number is required",
	"phone_number.phone":       "Phone number must be 7-15 digits, optional + prefix",
	"address_details.required": "Address is required",
	"address_details.min":      "Address must be at least 5 characters",
	"city.required":            "City is required",
	"city.min":                 "City must be at least 2 characters",
	"state.required":           "State is required",
	"state.min":                "State must be at least 2 characters",
	"pin_code.required":        "PIN code is required",
	"pin_code.pincode":         "PIN code must be 4-10 digits",
}

// Violations maps a json field name to its first failing rule's message.
type Violations map[string]string

// Empty reports whether no rule failed.
func (v Violations) Empty() bool { return len(v) == 0 }

// Validator wraps a configured go-playground validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the phone and pincode rules registered and
// json tag names used as field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("phone", matchPattern(phonePattern))
	_ = v.RegisterValidation("pincode", matchPattern(pinCodePattern))

	return &Validator{validate: v}
}

// Validate checks s and returns an INVALID_INPUT error carrying the message of
// the first failing rule in field order, or nil.
func (v *Validator) Validate(s any) error {
	fieldErrs, err := v.check(s)
	if err != nil {
		return err
	}
	if len(fieldErrs) == 0 {
		return nil
	}
	return models.ErrInvalidInput(message(fieldErrs[0]))
}

// ValidateAll checks s and returns one message per failing field.
func (v *Validator) ValidateAll(s any) (Violations, error) {
	fieldErrs, err := v.check(s)
	if err != nil {
		return nil, err
	}

	violations := Violations{}
	for _, fe := range fieldErrs {
		if _, seen := violations[fe.Field()]; !seen {
			violations[fe.Field()] = message(fe)
		}
	}
	return violations, nil
}

func (v *Validator) check(s any) (validator.ValidationErrors, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, nil
	}
	return nil, fmt.Errorf("validation: %w", err)
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func matchPattern(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

var std = New()

// Validate runs the shared rule set in first-failure mode.
func Validate(s any) error { return std.Validate(s) }

// ValidateAll runs the shared rule set in aggregated mode.
func ValidateAll(s any) (Violations, error) { return std.ValidateAll(s) }
