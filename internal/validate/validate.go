package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/countdown/countdown.go
//   type Countdown struct {
//       Days    int `yaml:"days" validate:"gte=0"`
//       Hours   int `yaml:"hours" validate:"hours"`
//       Minutes int `yaml:"minutes" validate:"sixty"`
//       ...
//   }
//
// Custom tags registered here: hours (0-23) and sixty (0-59).

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		_ = validatorInst.RegisterValidation("hours", bounded(0, 23)) //nolint:mnd // clock bounds
		_ = validatorInst.RegisterValidation("sixty", bounded(0, 59)) //nolint:mnd // clock bounds
	})
	return validatorInst
}

func bounded(lo, hi int64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().Int()
		return v >= lo && v <= hi
	}
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}

// Describe flattens validation errors into one readable line per field.
// Errors that did not come from the validator are returned unchanged.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: failed %s (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return strings.Join(parts, "; ")
}
