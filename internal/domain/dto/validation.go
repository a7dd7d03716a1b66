package dto

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ValidationError is a failed request validation with per-field messages.
type ValidationError struct {
	Fields map[string]string
}

// Error returns the field messages in a stable order.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return strings.Join(parts, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// RegisterValidations installs the custom tags and JSON field naming on v.
// The HTTP router calls it on gin's validator so both share the same rules.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("counting_unit", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseCountingUnit(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}

	// decimals validate as float64 so numeric tags like gte apply to prices
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return nil
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		if err := RegisterValidations(validate); err != nil {
			panic(fmt.Sprintf("dto: register validations: %v", err))
		}
	})
	return validate
}

// Validate checks a request outside of gin, e.g. an order file read by the CLI.
func Validate(req interface{}) error {
	if err := validatorInstance().Struct(req); err != nil {
		return ValidationDetails(err)
	}
	return nil
}

// ValidationDetails turns validator errors into a *ValidationError keyed by
// JSON field path. Other errors are returned unchanged.
func ValidationDetails(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

// fieldPath drops the root struct and embedded struct names from the
// namespace, leaving the JSON path of the field.
func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	path := make([]string, 0, len(segments))
	for i, seg := range segments {
		if i == 0 || (seg != "" && unicode.IsUpper(rune(seg[0]))) {
			continue
		}
		path = append(path, seg)
	}
	return strings.Join(path, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "counting_unit":
		return "must be case or piece"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
