package collection

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// HashSet is a Set that iterates in insertion order
type HashSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

// NewHashSet creates a set with optional initial items
func NewHashSet[T comparable](items ...T) *HashSet[T] {
	ret := &HashSet[T]{index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		_ = ret.put(item)
	}
	return ret
}

// put adds item unless present, interface held items of unhashable dynamic types are rejected
func (s *HashSet[T]) put(item T) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%T is not hashable: %v", item, p)
		}
	}()
	if s.index == nil {
		s.index = map[T]struct{}{}
	}
	if _, ok := s.index[item]; ok {
		return nil
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return nil
}

func (s *HashSet[T]) Add(value any) error {
	if value != nil && !reflect.TypeOf(value).Comparable() {
		return fmt.Errorf("%T is not hashable", value)
	}
	item, err := cast[T](value)
	if err != nil {
		return err
	}
	return s.put(item)
}

func (s *HashSet[T]) Contains(value any) (found bool) {
	if value != nil && !reflect.TypeOf(value).Comparable() {
		return false
	}
	item, ok := value.(T)
	if !ok {
		return false
	}
	defer func() {
		if recover() != nil {
			found = false
		}
	}()
	_, found = s.index[item]
	return found
}

func (s *HashSet[T]) Len() int {
	return len(s.items)
}

func (s *HashSet[T]) Values() []any {
	ret := make([]any, len(s.items))
	for i, item := range s.items {
		ret[i] = item
	}
	return ret
}

func (s *HashSet[T]) ElemType() reflect.Type {
	return elemType[T]()
}

// Items returns set elements in insertion order
func (s *HashSet[T]) Items() []T {
	return slices.Clone(s.items)
}

// TreeSet is a SortedSet of ordered elements
type TreeSet[T cmp.Ordered] struct {
	items []T
}

// NewTreeSet creates a sorted set with optional initial items
func NewTreeSet[T cmp.Ordered](items ...T) *TreeSet[T] {
	ret := &TreeSet[T]{}
	for _, item := range items {
		ret.put(item)
	}
	return ret
}

func (s *TreeSet[T]) put(item T) {
	index, found := slices.BinarySearch(s.items, item)
	if found {
		return
	}
	s.items = slices.Insert(s.items, index, item)
}

func (s *TreeSet[T]) Add(value any) error {
	item, err := cast[T](value)
	if err != nil {
		return err
	}
	s.put(item)
	return nil
}

func (s *TreeSet[T]) Contains(value any) bool {
	item, ok := value.(T)
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(s.items, item)
	return found
}

func (s *TreeSet[T]) First() (any, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[0], true
}

func (s *TreeSet[T]) Last() (any, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

func (s *TreeSet[T]) Len() int {
	return len(s.items)
}

func (s *TreeSet[T]) Values() []any {
	ret := make([]any, len(s.items))
	for i, item := range s.items {
		ret[i] = item
	}
	return ret
}

func (s *TreeSet[T]) ElemType() reflect.Type {
	return elemType[T]()
}

// Items returns set elements in ascending order
func (s *TreeSet[T]) Items() []T {
	return slices.Clone(s.items)
}
