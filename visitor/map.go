package visitor

import (
	"cmp"
	"reflect"
	"slices"
)

// IsMapSet returns true for map[K]struct{} and map[K]bool types
func IsMapSet(t reflect.Type) bool {
	if t.Kind() != reflect.Map {
		return false
	}
	elem := t.Elem()
	return elem.Kind() == reflect.Bool || (elem.Kind() == reflect.Struct && elem.Size() == 0)
}

// MapSetOf returns a sequence of set members, map[K]bool entries with false value are skipped.
// Keys of ordered kinds are visited in ascending order.
func MapSetOf(value any) (Sequence, bool) {
	if value == nil {
		return Sequence{}, false
	}
	val := reflect.ValueOf(value)
	if !IsMapSet(val.Type()) {
		return Sequence{}, false
	}
	isBool := val.Type().Elem().Kind() == reflect.Bool
	keys := make([]reflect.Value, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		if isBool && !iter.Value().Bool() {
			continue
		}
		keys = append(keys, iter.Key())
	}
	slices.SortFunc(keys, compareKeys)
	members := make([]any, len(keys))
	for i, key := range keys {
		members[i] = key.Interface()
	}
	return TypedSliceOf(members), true
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	}
	return 0
}
