package validator

import (
	"fmt"
	"strings"
)

// ElementOf checks that the value is one of list. The value is compared to
// each element with numeric normalization, so ElementOf([]int{1, 2}) accepts
// float64(2) decoded from JSON. An empty list is a configuration fault and
// the rule is skipped.
func ElementOf[T comparable](list []T, msg ...string) Rule {
	items := make([]string, len(list))
	for i, el := range list {
		items[i] = stringify(el)
	}

	r := Rule{
		Name:    "elementOf",
		Message: message(fmt.Sprintf("The value '%s' is not the element of [%s].", ValuePlaceholder, strings.Join(items, ", ")), msg),
		Check: func(value, _ any) bool {
			for _, el := range list {
				if equalValues(value, el) {
					return true
				}
			}
			return false
		},
	}
	if len(list) == 0 {
		r.Err = fmt.Errorf("%w: elementOf needs at least one element", ErrEmptyList)
	}
	return r
}
