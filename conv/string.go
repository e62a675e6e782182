package conv

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/viant/coerce/format/number"
	ftime "github.com/viant/coerce/format/time"
)

// StringConverter converts values to text.
// Temporal values are formatted with the first date pattern and numbers with the first number pattern when configured.
type StringConverter struct {
	dates    *ftime.Patterns
	numbers  *number.Patterns
	location *time.Location
}

func NewStringConverter(opts ...Option) (*StringConverter, error) {
	o := newOptions(opts)
	dates, err := o.dates()
	if err != nil {
		return nil, err
	}
	numbers, err := o.numbers()
	if err != nil {
		return nil, err
	}
	return &StringConverter{dates: dates, numbers: numbers, location: o.location}, nil
}

// Merge returns converter using receiver date pattern, number pattern and location when set, other's otherwise
func (c *StringConverter) Merge(other *StringConverter) *StringConverter {
	ret := *c
	if other == nil {
		return &ret
	}
	if ret.dates == nil {
		ret.dates = other.dates
	}
	if ret.numbers == nil {
		ret.numbers = other.numbers
	}
	if ret.location == nil {
		ret.location = other.location
	}
	return &ret
}

// DatePattern returns the formatting date pattern
func (c *StringConverter) DatePattern() string {
	if c.dates == nil {
		return ""
	}
	return c.dates.First().Pattern
}

// NumberPattern returns the formatting number pattern
func (c *StringConverter) NumberPattern() string {
	if c.numbers == nil {
		return ""
	}
	return c.numbers.Strings()[0]
}

func (c *StringConverter) Convert(value any) (any, error) {
	return scalar(value, "string", c.convert)
}

func (c *StringConverter) convert(value any) (any, error) {
	if text, ok := textOf(value); ok {
		return text, nil
	}
	if b, ok := boolOf(value); ok {
		if b {
			return "1", nil
		}
		return "0", nil
	}
	switch actual := value.(type) {
	case []byte:
		return string(actual), nil
	case time.Time:
		return c.formatTime(actual, time.RFC3339Nano), nil
	case OffsetDateTime:
		return c.formatTime(actual.Time, time.RFC3339Nano), nil
	case SQLTimestamp:
		return c.formatTime(actual.Time, sqlTimestampLayout), nil
	case SQLDate:
		if c.dates == nil {
			return actual.String(), nil
		}
		return c.dates.Format(actual.Time), nil
	case civil.Date:
		if c.dates == nil {
			return actual.String(), nil
		}
		return c.dates.Format(actual.In(time.UTC)), nil
	case civil.DateTime:
		if c.dates == nil {
			return actual.String(), nil
		}
		return c.dates.Format(actual.In(time.UTC)), nil
	case Calendar:
		return c.formatTime(actual.AsTime(), time.RFC3339Nano), nil
	case decimal.Decimal:
		if c.numbers != nil {
			return c.numbers.Format(actual), nil
		}
		return actual.String(), nil
	case *big.Int:
		if c.numbers != nil {
			return c.numbers.Format(decimal.NewFromBigInt(actual, 0)), nil
		}
		return actual.String(), nil
	}
	if text, ok := c.formatNumber(value); ok {
		return text, nil
	}
	return fmt.Sprint(value), nil
}

func (c *StringConverter) formatTime(ts time.Time, layout string) string {
	if c.location != nil {
		ts = ts.In(c.location)
	}
	if c.dates != nil {
		return c.dates.Format(ts)
	}
	return ts.Format(layout)
}

func (c *StringConverter) formatNumber(value any) (string, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if c.numbers != nil {
			return c.numbers.Format(decimal.NewFromInt(rv.Int())), true
		}
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if c.numbers != nil {
			return c.numbers.Format(decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)), true
		}
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		bitSize := 64
		if rv.Kind() == reflect.Float32 {
			bitSize = 32
		}
		if d, ok, err := toDecimal(value); c.numbers != nil && ok && err == nil {
			return c.numbers.Format(d), true
		}
		return strconv.FormatFloat(rv.Float(), 'f', -1, bitSize), true
	}
	return "", false
}
