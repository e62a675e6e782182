package conv

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/viant/coerce/format/number"
)

const decimalTarget = "decimal.Decimal"

// DecimalConverter converts numbers, bool and text to arbitrary precision decimal
type DecimalConverter struct {
	numbers *number.Patterns
}

func NewDecimalConverter(opts ...Option) (*DecimalConverter, error) {
	numbers, err := newOptions(opts).numbers()
	if err != nil {
		return nil, err
	}
	return &DecimalConverter{numbers: numbers}, nil
}

// Merge returns converter using receiver patterns when set, other's otherwise
func (c *DecimalConverter) Merge(other *DecimalConverter) *DecimalConverter {
	ret := *c
	if ret.numbers == nil && other != nil {
		ret.numbers = other.numbers
	}
	return &ret
}

func (c *DecimalConverter) Convert(value any) (any, error) {
	return scalar(value, decimalTarget, c.convert)
}

func (c *DecimalConverter) convert(value any) (any, error) {
	if b, ok := boolOf(value); ok {
		if b {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Zero, nil
	}
	if text, ok := textOf(value); ok {
		return c.parse(text)
	}
	d, ok, err := toDecimal(value)
	if !ok {
		return nil, NewError(KindUnsupportedSource, decimalTarget, value, nil)
	}
	if err != nil {
		return nil, NewError(KindUnsupportedSource, decimalTarget, value, err)
	}
	return d, nil
}

func (c *DecimalConverter) parse(text string) (any, error) {
	if text == "" {
		return nil, nil
	}
	if c.numbers != nil {
		d, err := c.numbers.Parse(text)
		if err != nil {
			return nil, &Error{Kind: KindParse, Target: decimalTarget, Value: text, Patterns: c.numbers.Strings()}
		}
		return d, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, NewError(KindParse, decimalTarget, text, errors.New("not a number"))
	}
	return d, nil
}
