package conv

import (
	"reflect"
	"strings"
)

// BooleanConverter converts numbers and text to bool.
// Numeric zero is false. Text "true", "on" (any case) and "1" is true, any other text is false.
type BooleanConverter struct{}

func NewBooleanConverter() *BooleanConverter {
	return &BooleanConverter{}
}

func (c *BooleanConverter) Convert(value any) (any, error) {
	return scalar(value, "bool", c.convert)
}

func (c *BooleanConverter) convert(value any) (any, error) {
	if b, ok := boolOf(value); ok {
		return b, nil
	}
	if text, ok := textOf(value); ok {
		if text == "" {
			return nil, nil
		}
		return strings.EqualFold(text, "true") || strings.EqualFold(text, "on") || text == "1", nil
	}
	rv := reflect.ValueOf(value)
	if kind := rv.Kind(); kind == reflect.Float32 || kind == reflect.Float64 {
		return rv.Float() != 0, nil
	}
	d, ok, err := toDecimal(value)
	if err != nil {
		return nil, NewError(KindUnsupportedSource, "bool", value, err)
	}
	if !ok {
		return nil, NewError(KindUnsupportedSource, "bool", value, nil)
	}
	return !d.IsZero(), nil
}
