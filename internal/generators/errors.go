package generators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmrzaf/blockgenie/internal/domain"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrInvalidCategory = errors.New("invalid category")
)

// ValidationError reports a malformed generation parameter. It is returned
// before any value is produced for the offending call.
type ValidationError struct {
	Param  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Param != "" {
		b.WriteString(e.Param)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidCategoryError reports a category tag outside the supported set.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	names := make([]string, 0, 4)
	for _, c := range domain.Categories() {
		names = append(names, string(c))
	}
	return fmt.Sprintf("invalid category %q (expected one of %s)", e.Category, strings.Join(names, ", "))
}

func (e *InvalidCategoryError) Is(target error) bool { return target == ErrInvalidCategory }

func invalid(param, format string, args ...any) *ValidationError {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
