package conv

import (
	"errors"
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
	"github.com/viant/coerce/collection"
	"github.com/viant/coerce/visitor"
)

var (
	errOutOfRange = errors.New("value out of range")
	errNotFinite  = errors.New("value is not finite")
)

// indirect dereferences pointers, nil pointers yield nil.
// Pointers to big.Int, calendars and collections are kept as they are.
func indirect(value any) any {
	for value != nil {
		switch value.(type) {
		case *big.Int, Calendar, collection.Collection:
			if isNil(value) {
				return nil
			}
			return value
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Pointer {
			return value
		}
		if rv.IsNil() {
			return nil
		}
		value = rv.Elem().Interface()
	}
	return nil
}

func isNil(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// scalar resolves absence and single element sequences before calling convert
func scalar(value any, target string, convert func(value any) (any, error)) (any, error) {
	value = indirect(value)
	if value == nil {
		return nil, nil
	}
	if _, ok := value.([]byte); !ok {
		if sequence, ok := visitor.SequenceOf(value); ok {
			if sequence.Len != 1 {
				return nil, NewError(KindMultiValue, target, value, nil)
			}
			element, _ := sequence.First()
			return scalar(element, target, convert)
		}
	}
	return convert(value)
}

// textOf returns string value of string kinds
func textOf(value any) (string, bool) {
	if text, ok := value.(string); ok {
		return text, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func boolOf(value any) (bool, bool) {
	if b, ok := value.(bool); ok {
		return b, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

// toDecimal converts numeric value to decimal, ok is false for non numeric values
func toDecimal(value any) (decimal.Decimal, bool, error) {
	switch actual := value.(type) {
	case decimal.Decimal:
		return actual, true, nil
	case *big.Int:
		return decimal.NewFromBigInt(actual, 0), true, nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true, nil
	case reflect.Float32:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, true, errNotFinite
		}
		return decimal.NewFromFloat32(float32(f)), true, nil
	case reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, true, errNotFinite
		}
		return decimal.NewFromFloat(f), true, nil
	}
	return decimal.Zero, false, nil
}

// toInt64 converts numeric value to int64 truncating fraction toward zero
func toInt64(value any) (int64, bool, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, true, errOutOfRange
		}
		return int64(u), true, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, true, errNotFinite
		}
		truncated := math.Trunc(f)
		if truncated < math.MinInt64 || truncated >= 1<<63 {
			return 0, true, errOutOfRange
		}
		return int64(truncated), true, nil
	}
	d, ok, err := toDecimal(value)
	if !ok || err != nil {
		return 0, ok, err
	}
	n, err := decimalToInt64(d)
	return n, true, err
}

func decimalToInt64(d decimal.Decimal) (int64, error) {
	integer := d.Truncate(0).BigInt()
	if !integer.IsInt64() {
		return 0, errOutOfRange
	}
	return integer.Int64(), nil
}

func inRange(n int64, bitSize int) bool {
	if bitSize >= 64 {
		return true
	}
	limit := int64(1) << (bitSize - 1)
	return n >= -limit && n < limit
}
