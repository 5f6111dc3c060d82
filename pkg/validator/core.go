package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is a single validation rule: a predicate over the field value and the
// object containing that field, paired with a failure message template.
//
// Message may contain the ":value" placeholder, replaced with the field value
// when the rule fails. Err holds a configuration fault detected when the rule
// was built; the engine reports it and skips the rule.
type Rule struct {
	Name    string
	Check   func(value, parent any) bool
	Message string
	Err     error
}

// Func builds a custom rule. The message is used verbatim.
func Func(name string, check func(value, parent any) bool, message string) Rule {
	r := Rule{Name: name, Check: check, Message: message}
	if check == nil {
		r.Err = fmt.Errorf("%w: rule %q", ErrNilCheck, name)
	}
	return r
}

// ValidationError is a single rule failure addressed by its dotted field path.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationErrors is the flat, ordered view of a validation result.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the failing field paths in the order they were validated.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
