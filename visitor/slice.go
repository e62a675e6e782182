package visitor

import (
	"reflect"

	"github.com/viant/coerce/collection"
)

// SequenceOf returns a sequence for a slice, an array or a collection, ok is false for any other value
func SequenceOf(value any) (Sequence, bool) {
	switch actual := value.(type) {
	case nil:
		return Sequence{}, false
	case []string:
		return TypedSliceOf(actual), true
	case []any:
		return TypedSliceOf(actual), true
	case []int:
		return TypedSliceOf(actual), true
	case []int64:
		return TypedSliceOf(actual), true
	case []float64:
		return TypedSliceOf(actual), true
	case []bool:
		return TypedSliceOf(actual), true
	case []byte:
		return TypedSliceOf(actual), true
	case collection.Collection:
		values := actual.Values()
		return TypedSliceOf(values), true
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		visitor := &AnySliceVisitor{data: val}
		return Sequence{Visit: visitor.Visit, Len: val.Len()}, true
	}
	return Sequence{}, false
}

// TypedSliceOf returns sequence of a typed slice
func TypedSliceOf[E any](slice []E) Sequence {
	return Sequence{Len: len(slice), Visit: func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}}
}

// AnySliceVisitor visits slices and arrays of any type via reflection.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over elements via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
