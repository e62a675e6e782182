package coerce

import (
	"reflect"

	"github.com/viant/coerce/collection"
	"github.com/viant/coerce/visitor"
)

// TypeOf returns reflect type of T, including interface types
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// deref dereferences pointers except collection pointers
func deref(value any) any {
	for value != nil {
		if _, ok := value.(collection.Collection); ok {
			if isNil(value) {
				return nil
			}
			return value
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Pointer {
			return value
		}
		if rv.IsNil() {
			return nil
		}
		value = rv.Elem().Interface()
	}
	return nil
}

// sequenceOf returns elements of slices, arrays, collections and map backed sets
func sequenceOf(value any) (visitor.Sequence, bool) {
	if sequence, ok := visitor.SequenceOf(value); ok {
		return sequence, true
	}
	return visitor.MapSetOf(value)
}

func typeName(t reflect.Type) string {
	switch t {
	case collection.ListType:
		return "List"
	case collection.SetType:
		return "Set"
	case collection.SortedSetType:
		return "SortedSet"
	}
	return t.String()
}
