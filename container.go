package coerce

import (
	"fmt"
	"reflect"

	"github.com/viant/coerce/collection"
	"github.com/viant/coerce/conv"
	"github.com/viant/coerce/visitor"
)

// Factory creates an empty collection
type Factory func() collection.Collection

func defaultFactories() map[reflect.Type]Factory {
	return map[reflect.Type]Factory{
		collection.ListType: func() collection.Collection { return collection.NewArrayList[any]() },
		collection.SetType:  func() collection.Collection { return collection.NewHashSet[any]() },
	}
}

// containerConverter rebuilds collections implementing kind, optionally map backed sets
type containerConverter struct {
	registry *Registry
	name     string
	kind     reflect.Type
	mapSets  bool
}

func newContainerConverter(registry *Registry, name string, kind reflect.Type, mapSets bool) *containerConverter {
	return &containerConverter{registry: registry, name: name, kind: kind, mapSets: mapSets}
}

func (c *containerConverter) IsConvertible(target reflect.Type) bool {
	if target == c.kind || target.Implements(c.kind) {
		return true
	}
	return c.mapSets && visitor.IsMapSet(target)
}

func (c *containerConverter) Convert(target reflect.Type, value any) (any, error) {
	value = deref(value)
	if value == nil {
		return reflect.Zero(target).Interface(), nil
	}
	if _, ok := sequenceOf(value); !ok {
		return nil, unsupported(target, value)
	}
	if visitor.IsMapSet(target) {
		return c.convertMapSet(target, value)
	}
	container, err := c.registry.instantiate(target)
	if err != nil {
		return nil, err
	}
	items, _, err := elements(c.registry, container.ElemType(), value)
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		if err = container.Add(item.Interface()); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, conv.NewError(conv.KindUnsupportedSource, typeName(target), value, err))
		}
	}
	return container, nil
}

func (c *containerConverter) convertMapSet(target reflect.Type, value any) (any, error) {
	items, _, err := elements(c.registry, target.Key(), value)
	if err != nil {
		return nil, err
	}
	member := reflect.Zero(target.Elem())
	if target.Elem().Kind() == reflect.Bool {
		member = reflect.ValueOf(true).Convert(target.Elem())
	}
	ret := reflect.MakeMapWithSize(target, len(items))
	for _, item := range items {
		if !item.Type().Comparable() {
			return nil, conv.NewError(conv.KindUnsupportedSource, typeName(target), value, fmt.Errorf("%v is not comparable", item.Type()))
		}
		ret.SetMapIndex(item, member)
	}
	return ret.Interface(), nil
}

// instantiate creates an empty container of target type with registered factory
func (r *Registry) instantiate(target reflect.Type) (ret collection.Collection, err error) {
	factory, ok := r.factories[target]
	if !ok {
		return nil, conv.NewError(conv.KindInstantiation, typeName(target), nil, fmt.Errorf("no factory registered"))
	}
	defer func() {
		if p := recover(); p != nil {
			ret, err = nil, conv.NewError(conv.KindInstantiation, typeName(target), nil, fmt.Errorf("factory panic: %v", p))
		}
	}()
	ret = factory()
	if isNil(ret) {
		return nil, conv.NewError(conv.KindInstantiation, typeName(target), nil, fmt.Errorf("factory returned nil"))
	}
	if !reflect.TypeOf(ret).AssignableTo(target) {
		return nil, conv.NewError(conv.KindInstantiation, typeName(target), nil, fmt.Errorf("factory returned %T", ret))
	}
	return ret, nil
}
