// Package validation checks write inputs against the rules declared in their
// struct tags and reports the first failure as an *Error.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Reasons reported in Error.Reason.
const (
	ReasonRequired = "is required"
	ReasonEmail    = "must be a valid email address"
	ReasonTaken    = "is already taken"
	ReasonInvalid  = "is invalid"
)

// ErrValidation matches every *Error via errors.Is.
var ErrValidation = errors.New("validation failed")

// Error is an input rejected before it reached the database.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

// Taken returns the error used for uniqueness conflicts on field.
func Taken(field string) *Error {
	return &Error{Field: field, Reason: ReasonTaken}
}

var (
	validate     *validator.Validate //nolint:gochecknoglobals
	validateOnce sync.Once           //nolint:gochecknoglobals
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}

			return name
		})
	})

	return validate
}

// Struct validates s. Rules are read from `validate` tags, field names from
// `json` tags.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err //nolint:wrapcheck
	}

	fe := fieldErrs[0]

	return &Error{Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ReasonRequired
	case "email":
		return ReasonEmail
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return ReasonInvalid
	}
}
