package coerce

import (
	"fmt"
	"reflect"

	"github.com/viant/coerce/conv"
)

// elements converts each element of value to elemType, ok is false when value is not a sequence
func elements(resolver Resolver, elemType reflect.Type, value any) ([]reflect.Value, bool, error) {
	sequence, ok := sequenceOf(value)
	if !ok {
		return nil, false, nil
	}
	var converter conv.Converter
	ret := make([]reflect.Value, 0, sequence.Len)
	err := sequence.Visit(func(index int, element any) (bool, error) {
		item, err := convertElement(resolver, &converter, elemType, element)
		if err != nil {
			return false, fmt.Errorf("element %d: %w", index, err)
		}
		ret = append(ret, item)
		return true, nil
	})
	return ret, true, err
}

func convertElement(resolver Resolver, converter *conv.Converter, elemType reflect.Type, element any) (reflect.Value, error) {
	if element == nil {
		if elemType.Kind() == reflect.Interface {
			return reflect.Zero(elemType), nil
		}
	} else if reflect.TypeOf(element).AssignableTo(elemType) {
		return reflect.ValueOf(element), nil
	}
	if *converter == nil {
		resolved, err := resolver.Resolve(elemType)
		if err != nil {
			return reflect.Value{}, err
		}
		*converter = resolved
	}
	converted, err := (*converter).Convert(element)
	if err != nil {
		return reflect.Value{}, err
	}
	if converted == nil {
		return reflect.Zero(elemType), nil
	}
	ret := reflect.ValueOf(converted)
	if !ret.Type().AssignableTo(elemType) {
		return reflect.Value{}, conv.NewError(conv.KindUnsupportedSource, elemType.String(), element, fmt.Errorf("converter produced %T", converted))
	}
	return ret, nil
}

func unsupported(target reflect.Type, value any) error {
	return conv.NewError(conv.KindUnsupportedSource, typeName(target), value, nil)
}

func unsupportedLength(target reflect.Type, value any, length int) error {
	return conv.NewError(conv.KindUnsupportedSource, typeName(target), value, fmt.Errorf("expected %d elements, but had %d", target.Len(), length))
}
