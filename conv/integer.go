package conv

import (
	"errors"
	"strconv"

	"github.com/viant/coerce/format/number"
)

// IntegerConverter converts numbers, bool and text to an integer type of the given bit size
type IntegerConverter struct {
	target  string
	bitSize int
	cast    func(int64) any
	numbers *number.Patterns
}

// NewShortConverter creates int16 converter
func NewShortConverter(opts ...Option) (*IntegerConverter, error) {
	return newIntegerConverter("int16", 16, func(n int64) any { return int16(n) }, opts)
}

// NewIntegerConverter creates int32 converter
func NewIntegerConverter(opts ...Option) (*IntegerConverter, error) {
	return newIntegerConverter("int32", 32, func(n int64) any { return int32(n) }, opts)
}

// NewIntConverter creates int converter
func NewIntConverter(opts ...Option) (*IntegerConverter, error) {
	return newIntegerConverter("int", strconv.IntSize, func(n int64) any { return int(n) }, opts)
}

// NewLongConverter creates int64 converter
func NewLongConverter(opts ...Option) (*IntegerConverter, error) {
	return newIntegerConverter("int64", 64, func(n int64) any { return n }, opts)
}

func newIntegerConverter(target string, bitSize int, cast func(int64) any, opts []Option) (*IntegerConverter, error) {
	numbers, err := newOptions(opts).numbers()
	if err != nil {
		return nil, err
	}
	return &IntegerConverter{target: target, bitSize: bitSize, cast: cast, numbers: numbers}, nil
}

// Merge returns converter using receiver patterns when set, other's otherwise
func (c *IntegerConverter) Merge(other *IntegerConverter) *IntegerConverter {
	ret := *c
	if ret.numbers == nil && other != nil {
		ret.numbers = other.numbers
	}
	return &ret
}

// Patterns returns configured number patterns
func (c *IntegerConverter) Patterns() []string {
	if c.numbers == nil {
		return nil
	}
	return c.numbers.Strings()
}

func (c *IntegerConverter) Convert(value any) (any, error) {
	return scalar(value, c.target, c.convert)
}

func (c *IntegerConverter) convert(value any) (any, error) {
	if b, ok := boolOf(value); ok {
		if b {
			return c.cast(1), nil
		}
		return c.cast(0), nil
	}
	if text, ok := textOf(value); ok {
		return c.parse(text)
	}
	n, ok, err := toInt64(value)
	if !ok {
		return nil, NewError(KindUnsupportedSource, c.target, value, nil)
	}
	if err != nil {
		return nil, NewError(KindUnsupportedSource, c.target, value, err)
	}
	return c.ranged(n, value)
}

func (c *IntegerConverter) parse(text string) (any, error) {
	if text == "" {
		return nil, nil
	}
	if c.numbers != nil {
		d, err := c.numbers.Parse(text)
		if err != nil {
			return nil, &Error{Kind: KindParse, Target: c.target, Value: text, Patterns: c.numbers.Strings()}
		}
		n, err := decimalToInt64(d)
		if err != nil {
			return nil, NewError(KindUnsupportedSource, c.target, text, err)
		}
		return c.ranged(n, text)
	}
	n, err := strconv.ParseInt(text, 10, c.bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, NewError(KindUnsupportedSource, c.target, text, errOutOfRange)
		}
		return nil, NewError(KindParse, c.target, text, errors.New("not a number"))
	}
	return c.cast(n), nil
}

func (c *IntegerConverter) ranged(n int64, value any) (any, error) {
	if !inRange(n, c.bitSize) {
		return nil, NewError(KindUnsupportedSource, c.target, value, errOutOfRange)
	}
	return c.cast(n), nil
}
