package conv

import "slices"

// BytesConverter accepts only byte slices and returns their copy
type BytesConverter struct{}

func NewBytesConverter() *BytesConverter {
	return &BytesConverter{}
}

func (c *BytesConverter) Convert(value any) (any, error) {
	value = indirect(value)
	if value == nil {
		return nil, nil
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, NewError(KindUnsupportedSource, "[]byte", value, nil)
	}
	if data == nil {
		return []byte(nil), nil
	}
	return slices.Clone(data), nil
}
