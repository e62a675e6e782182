package collection

import (
	"reflect"
	"slices"
)

// ArrayList is a slice backed List
type ArrayList[T any] struct {
	items []T
}

// NewArrayList creates a list with optional initial items
func NewArrayList[T any](items ...T) *ArrayList[T] {
	return &ArrayList[T]{items: slices.Clone(items)}
}

func (l *ArrayList[T]) Add(value any) error {
	item, err := cast[T](value)
	if err != nil {
		return err
	}
	l.items = append(l.items, item)
	return nil
}

func (l *ArrayList[T]) Get(index int) any {
	return l.items[index]
}

func (l *ArrayList[T]) Len() int {
	return len(l.items)
}

func (l *ArrayList[T]) Values() []any {
	ret := make([]any, len(l.items))
	for i, item := range l.items {
		ret[i] = item
	}
	return ret
}

func (l *ArrayList[T]) ElemType() reflect.Type {
	return elemType[T]()
}

// Items returns list elements
func (l *ArrayList[T]) Items() []T {
	return slices.Clone(l.items)
}
