package coerce

import (
	"fmt"

	"github.com/viant/coerce/conv"
)

// Convert converts value to T with registry
func Convert[T any](registry *Registry, value any) (T, error) {
	var zero T
	target := TypeOf[T]()
	ret, err := registry.Convert(target, value)
	if err != nil || ret == nil {
		return zero, err
	}
	typed, ok := ret.(T)
	if !ok {
		return zero, conv.NewError(conv.KindUnsupportedSource, typeName(target), value, fmt.Errorf("converter produced %T", ret))
	}
	return typed, nil
}

// Has returns true if registry resolves T
func Has[T any](registry *Registry) bool {
	return registry.HasConverter(TypeOf[T]())
}
