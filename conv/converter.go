package conv

import (
	"fmt"
	"reflect"
)

// Converter converts a value into its target type family.
// It returns nil when value represents absence and never mutates its own state.
type Converter interface {
	Convert(value any) (any, error)
}

// Func adapts a function to Converter
type Func func(value any) (any, error)

func (f Func) Convert(value any) (any, error) {
	return f(value)
}

// Mergeable is implemented by configurable converters, merge favors receiver configuration
type Mergeable[T any] interface {
	Converter
	Merge(other T) T
}

// Wrapper is implemented by converters decorating another converter
type Wrapper interface {
	Unwrap() Converter
}

type rewrapper interface {
	Wrapper
	rewrap(converter Converter) Converter
}

// Unwrap returns the innermost converter
func Unwrap(converter Converter) Converter {
	for {
		wrapper, ok := converter.(Wrapper)
		if !ok {
			return converter
		}
		converter = wrapper.Unwrap()
	}
}

// Primitive returns a converter producing T, absent input yields T zero value
func Primitive[T any](converter Converter) Converter {
	return &primitive[T]{converter: converter}
}

type primitive[T any] struct {
	converter Converter
}

func (p *primitive[T]) Convert(value any) (any, error) {
	ret, err := p.converter.Convert(value)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		var zero T
		return zero, nil
	}
	return as[T](ret, value)
}

func (p *primitive[T]) Unwrap() Converter {
	return p.converter
}

func (p *primitive[T]) rewrap(converter Converter) Converter {
	return Primitive[T](converter)
}

// Nullable returns a converter producing *T, absent input yields typed nil pointer
func Nullable[T any](converter Converter) Converter {
	return &nullable[T]{converter: converter}
}

type nullable[T any] struct {
	converter Converter
}

func (n *nullable[T]) Convert(value any) (any, error) {
	ret, err := n.converter.Convert(value)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return (*T)(nil), nil
	}
	typed, err := as[T](ret, value)
	if err != nil {
		return nil, err
	}
	return &typed, nil
}

func (n *nullable[T]) Unwrap() Converter {
	return n.converter
}

func (n *nullable[T]) rewrap(converter Converter) Converter {
	return Nullable[T](converter)
}

func as[T any](ret any, value any) (T, error) {
	typed, ok := ret.(T)
	if !ok {
		return typed, NewError(KindUnsupportedSource, TypeName[T](), value, fmt.Errorf("converter produced %T", ret))
	}
	return typed, nil
}

// TypeName returns T name as used in error messages
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
