package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrDuplicate         = errors.New("duplicate value")
	ErrBadRequest        = errors.New("bad request")
	ErrValidation        = errors.New("validation failed")
)

// ObjectNotFoundError reports a lookup of an entity that does not exist.
// Kind names the entity (parcel, zone, ...), ParamName the field that was
// queried and ID the value.
type ObjectNotFoundError struct {
	Kind      string
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(kind, paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		Kind:      kind,
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(kind, paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		Kind:      kind,
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s with %s %s", ErrObjectNotFound, e.Kind, e.ParamName, sanitize(e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but unusable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the closed range [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// DuplicateError reports a uniqueness violation on a directory entity.
type DuplicateError struct {
	Kind      string
	ParamName string
	Value     any
	Cause     error
}

func NewDuplicateError(kind, paramName string, value any) *DuplicateError {
	return &DuplicateError{Kind: kind, ParamName: paramName, Value: value}
}

func NewDuplicateErrorWithCause(kind, paramName string, value any, cause error) *DuplicateError {
	return &DuplicateError{Kind: kind, ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateError) Error() string {
	msg := fmt.Sprintf("%s: %s with %s %s already exists", ErrDuplicate, e.Kind, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// BadRequestError reports a request that is well formed but not acceptable,
// e.g. an ownership mismatch.
type BadRequestError struct {
	Reason string
	Cause  error
}

func NewBadRequestError(reason string) *BadRequestError {
	return &BadRequestError{Reason: reason}
}

func NewBadRequestErrorWithCause(reason string, cause error) *BadRequestError {
	return &BadRequestError{Reason: reason, Cause: cause}
}

func (e *BadRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrBadRequest, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBadRequest, e.Reason)
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

// Violation is a single field level constraint failure.
type Violation struct {
	Field   string
	Message string
}

// ValidationError aggregates every violation found while validating one input.
// The original leaf errors stay reachable through errors.Is and errors.As.
type ValidationError struct {
	Violations []Violation
	causes     []error
}

// NewValidationError builds a ValidationError from explicit violations.
func NewValidationError(violations ...Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Collect folds the leaves of a (possibly joined) error into a ValidationError.
// Returns nil when err is nil.
func Collect(err error) error {
	if err == nil {
		return nil
	}

	if existing, ok := err.(*ValidationError); ok {
		return existing
	}

	ve := &ValidationError{}
	for _, leaf := range leaves(err) {
		ve.Violations = append(ve.Violations, violationOf(leaf))
		ve.causes = append(ve.causes, leaf)
	}
	return ve
}

// Merge collects every non-nil err into one ValidationError. Only the first
// violation reported for a field is kept, so a field rejected by several
// checks appears once. Returns nil when every err is nil.
func Merge(results ...error) error {
	merged := &ValidationError{}
	seen := make(map[string]bool)
	for _, err := range results {
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(Collect(err), &ve) {
			continue
		}
		for _, v := range ve.Violations {
			if v.Field != "" {
				if seen[v.Field] {
					continue
				}
				seen[v.Field] = true
			}
			merged.Violations = append(merged.Violations, v)
		}
		merged.causes = append(merged.causes, ve.causes...)
	}
	if len(merged.Violations) == 0 {
		return nil
	}
	return merged
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrValidation}, e.causes...)
}

func leaves(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, inner := range joined.Unwrap() {
			if inner != nil {
				out = append(out, leaves(inner)...)
			}
		}
		return out
	}
	return []error{err}
}

func violationOf(err error) Violation {
	var (
		required   *ValueIsRequiredError
		outOfRange *ValueIsOutOfRangeError
		invalid    *ValueIsInvalidError
	)

	switch {
	case errors.As(err, &required):
		return Violation{Field: required.ParamName, Message: "is required"}
	case errors.As(err, &outOfRange):
		return Violation{
			Field: outOfRange.ParamName,
			Message: fmt.Sprintf("must be between %s and %s",
				sanitize(outOfRange.Min), sanitize(outOfRange.Max)),
		}
	case errors.As(err, &invalid):
		if invalid.Cause != nil {
			return Violation{Field: invalid.ParamName, Message: invalid.Cause.Error()}
		}
		return Violation{Field: invalid.ParamName, Message: "is invalid"}
	default:
		return Violation{Message: err.Error()}
	}
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.ReplaceAll(s, "\n", " ")
}
