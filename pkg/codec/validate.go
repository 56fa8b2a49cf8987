package codec

import (
	"reflect"
	"unicode/utf8"

	"github.com/arthur-debert/dokv/pkg/errors"
)

// checkUTF8 walks keys and values and fails on the first string that is not
// valid UTF-8. Encoders either replace such bytes or write files that no
// longer parse, so they are refused before marshalling.
func checkUTF8[V any](m map[string]V) error {
	seen := map[uintptr]bool{}
	for k, v := range m {
		if !utf8.ValidString(k) {
			return errors.Newf(errors.ErrCodecUnsupported, "key %q is not valid UTF-8", k).
				WithDetail("key", k)
		}
		if !validStrings(reflect.ValueOf(v), seen) {
			return errors.Newf(errors.ErrCodecUnsupported, "value of key %q is not valid UTF-8", k).
				WithDetail("key", k)
		}
	}
	return nil
}

func validStrings(v reflect.Value, seen map[uintptr]bool) bool {
	switch v.Kind() {
	case reflect.String:
		return utf8.ValidString(v.String())
	case reflect.Pointer:
		if v.IsNil() {
			return true
		}
		if seen[v.Pointer()] {
			return true
		}
		seen[v.Pointer()] = true
		return validStrings(v.Elem(), seen)
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return validStrings(v.Elem(), seen)
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return true
		}
		for i := 0; i < v.Len(); i++ {
			if !validStrings(v.Index(i), seen) {
				return false
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if !validStrings(iter.Key(), seen) || !validStrings(iter.Value(), seen) {
				return false
			}
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if !validStrings(v.Field(i), seen) {
				return false
			}
		}
	}
	return true
}
