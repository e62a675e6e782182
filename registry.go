package coerce

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"time"

	"github.com/viant/coerce/collection"
	"github.com/viant/coerce/conv"
	"github.com/viant/coerce/visitor"
)

// Registry resolves converters for target types.
// It is immutable once created and safe for concurrent use.
type Registry struct {
	location   *time.Location
	converters map[reflect.Type]conv.Converter
	extensions []ExtensionConverter
	factories  map[reflect.Type]Factory
	adapted    *visitor.SyncMap[reflect.Type, conv.Converter]
}

// New creates a registry with built-in converters, caller converters, extension converters and collection factories
func New(opts ...Option) (*Registry, error) {
	o := &options{}
	Options(opts).Apply(o)
	if o.err != nil {
		return nil, o.err
	}
	converters, err := builtins(o)
	if err != nil {
		return nil, err
	}
	if o.location == nil {
		o.location = time.UTC
	}
	for target, converter := range o.converters {
		converters[target] = converter
	}
	ret := &Registry{
		location:   o.location,
		converters: converters,
		factories:  defaultFactories(),
		adapted:    visitor.NewSyncMap[reflect.Type, conv.Converter](),
	}
	for target, factory := range o.factories {
		ret.factories[target] = factory
	}
	ret.extensions = []ExtensionConverter{
		newContainerConverter(ret, "List", collection.ListType, false),
		newContainerConverter(ret, "Set", collection.SetType, true),
		newArrayConverter(ret),
	}
	ret.extensions = append(ret.extensions, o.extensions...)
	return ret, nil
}

// Resolve returns exact converter of target type, or the first extension converter accepting it
func (r *Registry) Resolve(target reflect.Type) (conv.Converter, error) {
	if target == nil {
		return nil, conv.NewError(conv.KindUnresolvedType, "nil type", nil, nil)
	}
	if converter, ok := r.converters[target]; ok {
		return converter, nil
	}
	return r.adapted.Load(target, r.resolveExtension)
}

func (r *Registry) resolveExtension(target reflect.Type) (conv.Converter, error) {
	for _, extension := range r.extensions {
		if extension.IsConvertible(target) {
			return adapt(extension, target), nil
		}
	}
	return nil, conv.NewError(conv.KindUnresolvedType, target.String(), nil, nil)
}

// Convert converts value to target type
func (r *Registry) Convert(target reflect.Type, value any) (any, error) {
	converter, err := r.Resolve(target)
	if err != nil {
		return nil, err
	}
	return converter.Convert(value)
}

// HasConverter returns true if target type can be resolved
func (r *Registry) HasConverter(target reflect.Type) bool {
	_, err := r.Resolve(target)
	return err == nil
}

// Validate resolves all types eagerly, for containers it also checks element types and factories
func (r *Registry) Validate(types ...reflect.Type) error {
	var errs []error
	for _, target := range types {
		if err := r.validate(target, map[reflect.Type]bool{}); err != nil {
			errs = append(errs, fmt.Errorf("invalid target %v: %w", target, err))
		}
	}
	return errors.Join(errs...)
}

// validate checks target once per walk, visited guards recursive types like type tree []tree
func (r *Registry) validate(target reflect.Type, visited map[reflect.Type]bool) error {
	if visited[target] {
		return nil
	}
	visited[target] = true
	if _, err := r.Resolve(target); err != nil {
		return err
	}
	if _, ok := r.converters[target]; ok {
		return nil
	}
	switch {
	case visitor.IsMapSet(target):
		return r.validateElement(target.Key(), visited)
	case target.Kind() == reflect.Slice || target.Kind() == reflect.Array:
		return r.validateElement(target.Elem(), visited)
	case target.Implements(collection.CollectionType):
		container, err := r.instantiate(target)
		if err != nil {
			return err
		}
		return r.validateElement(container.ElemType(), visited)
	}
	return nil
}

func (r *Registry) validateElement(elemType reflect.Type, visited map[reflect.Type]bool) error {
	if elemType.Kind() == reflect.Interface {
		return nil
	}
	return r.validate(elemType, visited)
}

// Converters returns a snapshot of exact converters
func (r *Registry) Converters() map[reflect.Type]conv.Converter {
	return maps.Clone(r.converters)
}

// Extensions returns extension converters in resolution order
func (r *Registry) Extensions() []ExtensionConverter {
	return slices.Clone(r.extensions)
}

// Location returns default zone of temporal converters
func (r *Registry) Location() *time.Location {
	return r.location
}
