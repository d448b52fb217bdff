// Package validation checks request objects against the rules declared in their struct tags.
//
// Rules are declared with go-playground/validator `validate` tags. The user facing message for a
// failed rule is declared next to it in a `msg` tag of the form "rule:message|rule:message". A
// failed rule without a message falls back to a generic one.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// earliestOrderDate is the lower bound enforced by the orderdate rule.
var earliestOrderDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	once     sync.Once
	validate *validator.Validate
)

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every constraint that a request object violates.
type Error struct {
	Failures []FieldError
}

func (e *Error) Error() string {
	messages := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		messages = append(messages, f.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// HasField reports whether one of the failures concerns the named field.
func (e *Error) HasField(field string) bool {
	for _, f := range e.Failures {
		if f.Field == field {
			return true
		}
	}
	return false
}

// instance returns the shared validator. Field names in failures are the JSON names.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
		if err := validate.RegisterValidation("orderdate", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			return ok && !t.Before(earliestOrderDate)
		}); err != nil {
			panic(err)
		}
	})
	return validate
}

// Validate checks obj, which must be a struct or a pointer to a struct. It returns nil if all
// constraints hold and an *Error otherwise.
func Validate(obj any) error {
	err := instance().Struct(obj)
	if err == nil {
		return nil
	}
	var failed validator.ValidationErrors
	if !errors.As(err, &failed) {
		return err
	}
	typ := reflect.TypeOf(obj)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	result := &Error{Failures: make([]FieldError, 0, len(failed))}
	for _, fe := range failed {
		result.Failures = append(result.Failures, FieldError{
			Field:   fe.Field(),
			Message: message(typ, fe),
		})
	}
	return result
}

// message looks up the message declared for the failed rule in the field's msg tag.
func message(typ reflect.Type, fe validator.FieldError) string {
	if field, ok := typ.FieldByName(fe.StructField()); ok {
		for _, entry := range strings.Split(field.Tag.Get("msg"), "|") {
			rule, text, found := strings.Cut(entry, ":")
			if found && rule == fe.Tag() {
				return text
			}
		}
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on the %s=%s rule", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
}
