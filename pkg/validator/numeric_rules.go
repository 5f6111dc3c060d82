package validator

import "fmt"

// MinNumber checks that a number, or a numeric string, is at least min.
// Empty values (including zero) fail.
func MinNumber[T Numeric](min T, msg ...string) Rule {
	bound := float64(min)
	return Rule{
		Name:    "minNumber",
		Message: message(fmt.Sprintf("The minimum value for this field is %v", min), msg),
		Check: func(value, _ any) bool {
			if isEmpty(value) {
				return false
			}
			f, ok := toFloat(value)
			return ok && f >= bound
		},
	}
}

// MaxNumber checks that a number, or a numeric string, is at most max.
// Empty values (including zero) fail.
func MaxNumber[T Numeric](max T, msg ...string) Rule {
	bound := float64(max)
	return Rule{
		Name:    "maxNumber",
		Message: message(fmt.Sprintf("The maximum value for this field is %v", max), msg),
		Check: func(value, _ any) bool {
			if isEmpty(value) {
				return false
			}
			f, ok := toFloat(value)
			return ok && f <= bound
		},
	}
}
