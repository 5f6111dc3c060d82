package validator

import "fmt"

// Required fails for nil, empty strings, false, numeric zero, NaN and nil
// pointers, maps or slices.
func Required(msg ...string) Rule {
	return Rule{
		Name:    "required",
		Message: message("This field is required", msg),
		Check: func(value, _ any) bool {
			return !isEmpty(value)
		},
	}
}

// MinLength checks the rune count of strings, or the element count of
// slices, arrays and maps. Empty values fail. A bound below 1 is a
// configuration fault and the rule is skipped.
func MinLength(min int, msg ...string) Rule {
	r := Rule{
		Name:    "minLength",
		Message: message(fmt.Sprintf("The minimum length for this field is %d", min), msg),
		Check: func(value, _ any) bool {
			if isEmpty(value) {
				return false
			}
			n, ok := length(value)
			return ok && n >= min
		},
	}
	if min < 1 {
		r.Err = fmt.Errorf("%w: min length should be > 0, got %d", ErrInvalidBound, min)
	}
	return r
}

// MaxLength is the upper-bound counterpart of MinLength. Empty values fail.
// A negative bound is a configuration fault and the rule is skipped.
func MaxLength(max int, msg ...string) Rule {
	r := Rule{
		Name:    "maxLength",
		Message: message(fmt.Sprintf("The maximum length for this field is %d", max), msg),
		Check: func(value, _ any) bool {
			if isEmpty(value) {
				return false
			}
			n, ok := length(value)
			return ok && n <= max
		},
	}
	if max < 0 {
		r.Err = fmt.Errorf("%w: max length should be >= 0, got %d", ErrInvalidBound, max)
	}
	return r
}
