package font

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Flatten expands arbitrarily nested slices, arrays and maps into a flat
// sequence, preserving order. Map values are visited in ascending key order.
// Every other value (including strings and pointers) is a leaf.
func Flatten(items ...any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = appendFlat(out, item)
	}
	return out
}

func appendFlat(out []any, item any) []any {
	if item == nil {
		return out
	}

	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			// []byte is a string in disguise
			return append(out, string(v.Bytes()))
		}
		for i := 0; i < v.Len(); i++ {
			out = appendFlat(out, v.Index(i).Interface())
		}
		return out
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, compareKeys)
		for _, k := range keys {
			out = appendFlat(out, v.MapIndex(k).Interface())
		}
		return out
	default:
		return append(out, item)
	}
}

func compareKeys(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	case a.CanFloat() && b.CanFloat():
		return cmp.Compare(a.Float(), b.Float())
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return cmp.Compare(a.String(), b.String())
	default:
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}
