package conv

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type conversionCase struct {
	name   string
	src    any
	expect any
	kind   Kind
}

func runCases(t *testing.T, converter Converter, testCases []conversionCase) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := converter.Convert(tc.src)
			if tc.kind != 0 {
				require.Error(t, err)
				kind, ok := KindOf(err)
				require.True(t, ok, "expected conversion error, got %v", err)
				assert.Equal(t, tc.kind, kind, err.Error())
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestBooleanConverter(t *testing.T) {
	truth := true
	runCases(t, NewBooleanConverter(), []conversionCase{
		{name: "bool identity", src: true, expect: true},
		{name: "bool pointer", src: &truth, expect: true},
		{name: "On", src: "On", expect: true},
		{name: "TRUE", src: "TRUE", expect: true},
		{name: "one", src: "1", expect: true},
		{name: "two", src: "2", expect: false},
		{name: "unparsable text", src: "abc", expect: false},
		{name: "empty", src: "", expect: nil},
		{name: "nil", src: nil, expect: nil},
		{name: "zero int", src: 0, expect: false},
		{name: "non zero int", src: int64(-5), expect: true},
		{name: "fraction", src: 0.5, expect: true},
		{name: "zero float", src: 0.0, expect: false},
		{name: "zero decimal", src: decimal.Zero, expect: false},
		{name: "big int", src: big.NewInt(3), expect: true},
		{name: "single element", src: []string{"on"}, expect: true},
		{name: "multiple elements", src: []string{"1", "2"}, kind: KindMultiValue},
		{name: "unsupported", src: struct{}{}, kind: KindUnsupportedSource},
	})
}

func TestIntegerConverter(t *testing.T) {
	converter, err := NewIntegerConverter()
	require.NoError(t, err)
	runCases(t, converter, []conversionCase{
		{name: "text", src: "102", expect: int32(102)},
		{name: "negative text", src: "-7", expect: int32(-7)},
		{name: "single element", src: []string{"102"}, expect: int32(102)},
		{name: "multiple elements", src: []string{"1", "2"}, kind: KindMultiValue},
		{name: "empty sequence", src: []string{}, kind: KindMultiValue},
		{name: "true", src: true, expect: int32(1)},
		{name: "false", src: false, expect: int32(0)},
		{name: "int64", src: int64(5), expect: int32(5)},
		{name: "uint8", src: uint8(200), expect: int32(200)},
		{name: "float truncated", src: 3.9, expect: int32(3)},
		{name: "negative float truncated", src: -3.9, expect: int32(-3)},
		{name: "decimal truncated", src: decimal.RequireFromString("12.7"), expect: int32(12)},
		{name: "big int", src: big.NewInt(42), expect: int32(42)},
		{name: "empty", src: "", expect: nil},
		{name: "fraction text", src: "1.5", kind: KindParse},
		{name: "grouped text without pattern", src: "1,234,567,890", kind: KindParse},
		{name: "not number", src: "Not number", kind: KindParse},
		{name: "out of range", src: int64(1) << 40, kind: KindUnsupportedSource},
		{name: "text out of range", src: "3000000000", kind: KindUnsupportedSource},
		{name: "uint64 out of range", src: uint64(math.MaxUint64), kind: KindUnsupportedSource},
		{name: "NaN", src: math.NaN(), kind: KindUnsupportedSource},
		{name: "unsupported", src: []byte("1"), kind: KindUnsupportedSource},
	})
}

func TestIntegerConverter_Families(t *testing.T) {
	short, err := NewShortConverter()
	require.NoError(t, err)
	long, err := NewLongConverter()
	require.NoError(t, err)
	integer, err := NewIntConverter()
	require.NoError(t, err)

	actual, err := short.Convert("123")
	require.NoError(t, err)
	assert.Equal(t, int16(123), actual)
	_, err = short.Convert(40000)
	assert.True(t, errors.Is(err, ErrUnsupportedSource))

	actual, err = long.Convert("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), actual)
	_, err = long.Convert(1e19)
	assert.True(t, errors.Is(err, ErrUnsupportedSource))

	actual, err = integer.Convert(int16(-4))
	require.NoError(t, err)
	assert.Equal(t, -4, actual)
}

func TestIntegerConverter_Patterns(t *testing.T) {
	converter, err := NewIntegerConverter(WithNumberPatterns("#,###", "#,####.#"))
	require.NoError(t, err)
	runCases(t, converter, []conversionCase{
		{name: "grouped", src: "1,234,567,890", expect: int32(1234567890)},
		{name: "grouped with fraction", src: "12,3456,7890.123", expect: int32(1234567890)},
		{name: "not number", src: "Not number", kind: KindParse},
	})
	_, err = converter.Convert("x")
	parseErr := &Error{}
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, []string{"#,###", "#,####.#"}, parseErr.Patterns)
	assert.Equal(t, []string{"#,###", "#,####.#"}, converter.Patterns())

	_, err = NewIntegerConverter(WithNumberPatterns("abc"))
	assert.Error(t, err)
}

func TestIntegerConverter_Merge(t *testing.T) {
	plain, _ := NewLongConverter()
	grouped, _ := NewLongConverter(WithNumberPatterns("#,###"))
	dotted, _ := NewLongConverter(WithNumberPatterns("#.###"))

	adopted := plain.Merge(grouped)
	actual, err := adopted.Convert("1,000")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), actual)

	kept := dotted.Merge(grouped)
	assert.Equal(t, []string{"#.###"}, kept.Patterns())
	assert.Nil(t, plain.Patterns(), "merge must not mutate receiver")
}

func TestDecimalConverter(t *testing.T) {
	converter, err := NewDecimalConverter()
	require.NoError(t, err)
	testCases := []struct {
		name   string
		src    any
		expect string
		kind   Kind
	}{
		{name: "decimal identity", src: decimal.RequireFromString("1.25"), expect: "1.25"},
		{name: "tiny text", src: "0.0000000001", expect: "0.0000000001"},
		{name: "exponent text", src: "1.5e3", expect: "1500"},
		{name: "int", src: 10, expect: "10"},
		{name: "uint64", src: uint64(math.MaxUint64), expect: "18446744073709551615"},
		{name: "float", src: 1.5, expect: "1.5"},
		{name: "true", src: true, expect: "1"},
		{name: "false", src: false, expect: "0"},
		{name: "big int", src: new(big.Int).Lsh(big.NewInt(1), 70), expect: "1180591620717411303424"},
		{name: "single element", src: []any{"3.3"}, expect: "3.3"},
		{name: "not number", src: "abc", kind: KindParse},
		{name: "infinity", src: math.Inf(1), kind: KindUnsupportedSource},
		{name: "unsupported", src: struct{}{}, kind: KindUnsupportedSource},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := converter.Convert(tc.src)
			if tc.kind != 0 {
				kind, _ := KindOf(err)
				assert.Equal(t, tc.kind, kind)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expect).Equal(actual.(decimal.Decimal)), "got %v", actual)
		})
	}

	actual, err := converter.Convert("")
	require.NoError(t, err)
	assert.Nil(t, actual)

	patterned, err := NewDecimalConverter(WithNumberPatterns("#,##0.00"))
	require.NoError(t, err)
	actual, err = patterned.Convert("1,234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", actual.(decimal.Decimal).String())
	_, err = patterned.Convert("1.2.3")
	assert.True(t, errors.Is(err, ErrParse))
}

func TestBytesConverter(t *testing.T) {
	converter := NewBytesConverter()
	src := []byte("abc")
	actual, err := converter.Convert(src)
	require.NoError(t, err)
	assert.Equal(t, src, actual)
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), actual, "result must not alias the input")

	actual, err = converter.Convert(nil)
	require.NoError(t, err)
	assert.Nil(t, actual)

	_, err = converter.Convert("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedSource))
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Contains(t, err.Error(), "[]byte")
}

func TestStringArrayConverter(t *testing.T) {
	src := []string{"a", "b"}
	runCases(t, NewStringArrayConverter(nil), []conversionCase{
		{name: "copy", src: src, expect: []string{"a", "b"}},
		{name: "single", src: "a", expect: []string{"a"}},
		{name: "mixed", src: []any{1, true, nil, "x"}, expect: []string{"1", "1", "", "x"}},
		{name: "array", src: [2]int{1, 2}, expect: []string{"1", "2"}},
		{name: "nil", src: nil, expect: nil},
		{name: "unsupported", src: 10, kind: KindUnsupportedSource},
	})
}

func TestObjectArrayConverter(t *testing.T) {
	runCases(t, NewObjectArrayConverter(), []conversionCase{
		{name: "strings", src: []string{"a", "b"}, expect: []any{"a", "b"}},
		{name: "any", src: []any{1, "b"}, expect: []any{1, "b"}},
		{name: "unsupported", src: "abc", kind: KindUnsupportedSource},
	})
}

func TestPrimitiveAndNullable(t *testing.T) {
	base, _ := NewIntegerConverter()
	primitive := Primitive[int32](base)
	nullable := Nullable[int32](base)

	actual, err := primitive.Convert("")
	require.NoError(t, err)
	assert.Equal(t, int32(0), actual)
	actual, err = primitive.Convert(nil)
	require.NoError(t, err)
	assert.Equal(t, int32(0), actual)

	actual, err = nullable.Convert("")
	require.NoError(t, err)
	assert.Equal(t, (*int32)(nil), actual)
	actual, err = nullable.Convert("5")
	require.NoError(t, err)
	require.IsType(t, (*int32)(nil), actual)
	assert.Equal(t, int32(5), *actual.(*int32))

	_, err = nullable.Convert("x")
	assert.True(t, errors.Is(err, ErrParse))

	assert.Same(t, base, Unwrap(nullable))
	assert.Same(t, base, Unwrap(primitive))

	mismatched := Primitive[string](Func(func(value any) (any, error) { return 1, nil }))
	_, err = mismatched.Convert("x")
	assert.True(t, errors.Is(err, ErrUnsupportedSource))
}
