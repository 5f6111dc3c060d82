package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// ValuePlaceholder is replaced with the field value in failure messages.
const ValuePlaceholder = ":value"

// AppendDot appends a period to s unless it is empty or already ends with
// one of '.', '!', '?' or ';'.
func AppendDot(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?', ';':
		return s
	}
	return s + "."
}

// message picks the custom message when given, the default otherwise, and
// terminates it with punctuation.
func message(def string, custom []string) string {
	msg := def
	if len(custom) > 0 && custom[0] != "" {
		msg = custom[0]
	}
	return AppendDot(msg)
}

// formatMessage substitutes the placeholder in a rule message.
func formatMessage(tmpl string, value any) string {
	if !strings.Contains(tmpl, ValuePlaceholder) {
		return tmpl
	}
	return strings.ReplaceAll(tmpl, ValuePlaceholder, stringify(value))
}

// stringify renders nil, including nil pointers, maps and slices, as the
// empty string.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(value)
}
