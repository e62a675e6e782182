package coerce

import "reflect"

// arrayConverter rebuilds slices and fixed size arrays
type arrayConverter struct {
	resolver Resolver
}

func newArrayConverter(resolver Resolver) *arrayConverter {
	return &arrayConverter{resolver: resolver}
}

func (c *arrayConverter) IsConvertible(target reflect.Type) bool {
	kind := target.Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func (c *arrayConverter) Convert(target reflect.Type, value any) (any, error) {
	value = deref(value)
	if value == nil {
		return reflect.Zero(target).Interface(), nil
	}
	items, ok, err := elements(c.resolver, target.Elem(), value)
	if !ok {
		return nil, unsupported(target, value)
	}
	if err != nil {
		return nil, err
	}
	if target.Kind() == reflect.Array {
		if len(items) != target.Len() {
			return nil, unsupportedLength(target, value, len(items))
		}
		ret := reflect.New(target).Elem()
		for i, item := range items {
			ret.Index(i).Set(item)
		}
		return ret.Interface(), nil
	}
	ret := reflect.MakeSlice(target, len(items), len(items))
	for i, item := range items {
		ret.Index(i).Set(item)
	}
	return ret.Interface(), nil
}
