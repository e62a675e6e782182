// Package collection defines List and Set containers that conversions can reconstruct.
package collection

import (
	"fmt"
	"reflect"
)

// Collection represents a container of elements of a single type
type Collection interface {
	// Add adds an element, it fails if value is not of element type
	Add(value any) error
	Len() int
	// Values returns a copy of elements in iteration order
	Values() []any
	ElemType() reflect.Type
}

// List represents ordered collection that allows duplicates
type List interface {
	Collection
	Get(index int) any
}

// Set represents collection without duplicates
type Set interface {
	Collection
	Contains(value any) bool
}

// SortedSet represents a set that iterates in ascending order
type SortedSet interface {
	Set
	First() (any, bool)
	Last() (any, bool)
}

var (
	CollectionType = reflect.TypeOf((*Collection)(nil)).Elem()
	ListType       = reflect.TypeOf((*List)(nil)).Elem()
	SetType        = reflect.TypeOf((*Set)(nil)).Elem()
	SortedSetType  = reflect.TypeOf((*SortedSet)(nil)).Elem()
)

func elemType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func cast[T any](value any) (T, error) {
	if value == nil {
		var zero T
		if elemType[T]().Kind() == reflect.Interface {
			return zero, nil
		}
		return zero, fmt.Errorf("nil is not assignable to %v", elemType[T]())
	}
	ret, ok := value.(T)
	if !ok {
		return ret, fmt.Errorf("%T is not assignable to %v", value, elemType[T]())
	}
	return ret, nil
}
