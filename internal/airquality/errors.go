package airquality

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reasons attached to a FieldError.
const (
	ReasonNonNumeric     = "non-numeric"
	ReasonOutOfRange     = "out-of-range"
	ReasonMustBePositive = "must-be-positive"
	ReasonExceedsMaximum = "exceeds-maximum"
	ReasonRequired       = "required"
)

// FieldError names one input field that failed a precondition.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is the only error kind produced by the estimator and the
// planner. It is always a caller-input defect; nothing is computed when it
// is returned.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("invalid input (%s)", strings.Join(parts, ", "))
}

// Add records a failing field. A field is only recorded once.
func (e *ValidationError) Add(field, reason string) {
	if e.Has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Has reports whether field was already recorded.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// FieldNames returns the offending field names in the order they were found.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

// OrNil returns nil when no field failed, so callers can write
// `return verr.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var validate = newValidator()

// newValidator reports struct fields by their json name so errors line up
// with what API callers sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validator exposes the shared validator so other packages report field
// names the same way.
func Validator() *validator.Validate {
	return validate
}

// CheckStruct runs the validator tags of s and folds the failures into verr.
func CheckStruct(s any, verr *ValidationError) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), reasonForTag(fe.Tag()))
	}
	return nil
}

func reasonForTag(tag string) string {
	switch tag {
	case "gt":
		return ReasonMustBePositive
	case "ltefield":
		return ReasonExceedsMaximum
	case "required":
		return ReasonRequired
	default:
		return ReasonOutOfRange
	}
}
