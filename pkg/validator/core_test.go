package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validatekit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "address.street", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; address.street: too short", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "password", Rule: "minLength", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Rule: "required", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "password", Rule: "containNumber", Message: "needs a number"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "needs a number"}, errs.Get("password"))
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "email", Message: "is required"}}
		wrapped := fmt.Errorf("create user: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.Equal(t, errs, extracted)
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestFunc(t *testing.T) {
	t.Run("builds a rule from a predicate", func(t *testing.T) {
		rule := validator.Func("even", func(value, _ any) bool {
			n, ok := value.(int)
			return ok && n%2 == 0
		}, "The value must be even")

		assert.Equal(t, "even", rule.Name)
		assert.Equal(t, "The value must be even", rule.Message)
		assert.NoError(t, rule.Err)
		assert.True(t, rule.Check(2, nil))
		assert.False(t, rule.Check(3, nil))
	})

	t.Run("passes the containing object", func(t *testing.T) {
		rule := validator.Func("lessThanMax", func(value, parent any) bool {
			m, _ := parent.(map[string]any)
			return value.(int) < m["max"].(int)
		}, "too big")

		assert.True(t, rule.Check(1, map[string]any{"max": 2}))
		assert.False(t, rule.Check(3, map[string]any{"max": 2}))
	})

	t.Run("nil predicate is a configuration fault", func(t *testing.T) {
		rule := validator.Func("broken", nil, "never")
		assert.ErrorIs(t, rule.Err, validator.ErrNilCheck)
	})
}

func TestAppendDot(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Name is required", "Name is required."},
		{"Name is required.", "Name is required."},
		{"Really?", "Really?"},
		{"Stop!", "Stop!"},
		{"a; b;", "a; b;"},
		{"ends with space ", "ends with space ."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.AppendDot(tt.in))
		})
	}
}
