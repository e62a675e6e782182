package conv

import "fmt"

// Derive returns a converter of the same kind as base configured with opts.
// Settings given by opts take precedence, anything they leave unset is taken from base.
// Primitive and nullable wrapping of base is preserved.
func Derive(base Converter, opts ...Option) (Converter, error) {
	if len(opts) == 0 {
		return base, nil
	}
	if wrapper, ok := base.(rewrapper); ok {
		derived, err := Derive(wrapper.Unwrap(), opts...)
		if err != nil {
			return nil, err
		}
		return wrapper.rewrap(derived), nil
	}
	switch actual := base.(type) {
	case *StringConverter:
		return merge(NewStringConverter, actual, opts)
	case *IntegerConverter:
		derived := *actual
		numbers, err := newOptions(opts).numbers()
		if err != nil {
			return nil, err
		}
		derived.numbers = numbers
		return derived.Merge(actual), nil
	case *DecimalConverter:
		return merge(NewDecimalConverter, actual, opts)
	case *DateConverter:
		return merge(NewDateConverter, actual, opts)
	case *SQLDateConverter:
		return merge(NewSQLDateConverter, actual, opts)
	case *SQLTimestampConverter:
		return merge(NewSQLTimestampConverter, actual, opts)
	case *LocalDateConverter:
		return merge(NewLocalDateConverter, actual, opts)
	case *LocalDateTimeConverter:
		return merge(NewLocalDateTimeConverter, actual, opts)
	case *OffsetDateTimeConverter:
		return merge(NewOffsetDateTimeConverter, actual, opts)
	}
	return nil, fmt.Errorf("converter %T is not configurable", base)
}

func merge[T Mergeable[T]](newConverter func(opts ...Option) (T, error), base T, opts []Option) (Converter, error) {
	derived, err := newConverter(opts...)
	if err != nil {
		return nil, err
	}
	return derived.Merge(base), nil
}
