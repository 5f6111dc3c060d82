package validator

import "fmt"

// EqualTo checks that the value equals the sibling field named field of the
// containing object, e.g. a password confirmation. Numbers compare by value
// regardless of their Go type.
func EqualTo(field string, msg ...string) Rule {
	return Rule{
		Name:    "equalTo",
		Message: message(fmt.Sprintf("The value should be equal to %s value", field), msg),
		Check: func(value, parent any) bool {
			other, _ := lookupField(parent, field)
			return equalValues(value, other)
		},
	}
}
