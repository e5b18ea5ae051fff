package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInput = errors.New("invalid input")

// Error lista los campos inválidos (nombre json -> mensaje).
// errors.Is(err, ErrInvalidInput) es true.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool { return target == ErrInvalidInput }

// Validator envuelve go-playground/validator usando los nombres de los tags json.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("isodatetime", func(fl validator.FieldLevel) bool {
		_, err := ParseISODateTime(fl.Field().String())
		return err == nil
	})

	return &Validator{v: v}
}

// Layouts aceptados para fechas ISO 8601: RFC3339 completo o el formato
// sin zona que produce un input datetime-local.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISODateTime interpreta s con el primer layout que encaje.
// Los valores sin zona se interpretan en UTC.
func ParseISODateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO 8601 date-time: %q", s)
}

// Struct devuelve nil o un *Error con un mensaje por campo.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		fields[e.Field()] = message(e)
	}
	return &Error{Fields: fields}
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case "datetime":
		return fmt.Sprintf("%s must match the layout %s", e.Field(), e.Param())
	case "isodatetime":
		return fmt.Sprintf("%s must be an ISO 8601 date-time", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
