package demo

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps form field names to a message for the visitor.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

// Validator checks demo requests and newsletter signups.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "erp", ERPOptions)
	mustRegister(v, "warehouse_size", WarehouseSizes)
	mustRegister(v, "challenge", ChallengeOptions)
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, options []string) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(options, fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate returns FieldErrors describing every invalid field, or nil.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, ok := fe[field]; !ok {
			fe[field] = message(e)
		}
	}
	return fe
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Keep this under %s characters.", e.Param())
	case "erp", "warehouse_size":
		return "Pick one of the listed options."
	case "challenge":
		return "Pick challenges from the list."
	case "unique":
		return "Each challenge can be selected once."
	}
	return "This value is not valid."
}
