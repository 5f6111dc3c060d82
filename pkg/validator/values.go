package validator

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// isEmpty reports whether a value counts as missing for Required and the
// bounded rules: nil, empty string, false, numeric zero, NaN and nil
// pointers, maps, slices or interfaces.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// numeric converts values of numeric kinds to float64.
func numeric(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// toFloat is numeric plus numeric strings ("18", " 4.5 ").
func toFloat(value any) (float64, bool) {
	if f, ok := numeric(value); ok {
		return f, true
	}
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// length counts runes of strings and elements of slices, arrays and maps.
func length(value any) (int, bool) {
	if value == nil {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// equalValues compares numbers by value regardless of their Go type and
// everything else with reflect.DeepEqual.
func equalValues(a, b any) bool {
	af, aok := numeric(a)
	bf, bok := numeric(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

// lookupField returns the own property key of obj. Maps with string keys are
// indexed directly; structs are matched by json tag name first, then by Go
// field name. Only exported struct fields are visible.
func lookupField(obj any, key string) (any, bool) {
	switch o := obj.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := o[key]
		return v, ok
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		return structField(rv, key)
	}
	return nil, false
}

func structField(rv reflect.Value, key string) (any, bool) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == key {
			return rv.Field(i).Interface(), true
		}
	}

	sf, ok := typ.FieldByName(key)
	if !ok || !sf.IsExported() {
		return nil, false
	}
	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, false
	}
	return fv.Interface(), true
}

// asString returns the value of string kinds, named string types included.
func asString(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	if s, ok := value.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
