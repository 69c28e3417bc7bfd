package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"parceltracker/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks bound request bodies against their validate tags and
// reports every failing field under its JSON name.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewBadRequestErrorWithCause("request body cannot be validated", err)
	}

	violations := make([]errs.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, errs.Violation{Field: fieldPath(fe), Message: describe(fe)})
	}
	return errs.NewValidationError(violations...)
}

// fieldPath drops the struct name from the namespace: NewParcel.items[0].productId
// becomes items[0].productId.
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed the %q constraint", fe.Tag())
	}
}
