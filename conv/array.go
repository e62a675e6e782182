package conv

import (
	"slices"

	"github.com/viant/coerce/visitor"
)

// StringArrayConverter converts a single value or a sequence to []string
type StringArrayConverter struct {
	element Converter
}

// NewStringArrayConverter creates converter using element converter for each element, string converter when nil
func NewStringArrayConverter(element Converter) *StringArrayConverter {
	if element == nil {
		element = &StringConverter{}
	}
	return &StringArrayConverter{element: element}
}

func (c *StringArrayConverter) Convert(value any) (any, error) {
	value = indirect(value)
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return slices.Clone(actual), nil
	case string:
		return []string{actual}, nil
	}
	if _, ok := value.([]byte); ok {
		return nil, NewError(KindUnsupportedSource, "[]string", value, nil)
	}
	sequence, ok := visitor.SequenceOf(value)
	if !ok {
		return nil, NewError(KindUnsupportedSource, "[]string", value, nil)
	}
	ret := make([]string, 0, sequence.Len)
	err := sequence.Visit(func(index int, element any) (bool, error) {
		converted, err := c.element.Convert(element)
		if err != nil {
			return false, err
		}
		text, _ := converted.(string)
		ret = append(ret, text)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ObjectArrayConverter copies any sequence into []any
type ObjectArrayConverter struct{}

func NewObjectArrayConverter() *ObjectArrayConverter {
	return &ObjectArrayConverter{}
}

func (c *ObjectArrayConverter) Convert(value any) (any, error) {
	value = indirect(value)
	if value == nil {
		return nil, nil
	}
	sequence, ok := visitor.SequenceOf(value)
	if !ok {
		return nil, NewError(KindUnsupportedSource, "[]interface {}", value, nil)
	}
	return sequence.Elements()
}
