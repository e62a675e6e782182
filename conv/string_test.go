package conv

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestStringConverter(t *testing.T) {
	converter, err := NewStringConverter()
	require.NoError(t, err)
	runCases(t, converter, []conversionCase{
		{name: "identity", src: "abc", expect: "abc"},
		{name: "empty", src: "", expect: ""},
		{name: "int", src: 100, expect: "100"},
		{name: "negative int64", src: int64(-5), expect: "-5"},
		{name: "uint", src: uint(7), expect: "7"},
		{name: "float", src: 1.25, expect: "1.25"},
		{name: "float32", src: float32(0.1), expect: "0.1"},
		{name: "true", src: true, expect: "1"},
		{name: "false", src: false, expect: "0"},
		{name: "bytes", src: []byte("abc"), expect: "abc"},
		{name: "tiny decimal", src: decimal.RequireFromString("0.0000000001"), expect: "0.0000000001"},
		{name: "big int", src: big.NewInt(12345), expect: "12345"},
		{name: "single element", src: []string{"a"}, expect: "a"},
		{name: "multiple elements", src: []string{"1", "2"}, kind: KindMultiValue},
		{name: "local date", src: civil.Date{Year: 2018, Month: 2, Day: 21}, expect: "2018-02-21"},
		{name: "local date time", src: civil.DateTime{Date: civil.Date{Year: 2018, Month: 2, Day: 21}, Time: civil.Time{Hour: 12, Minute: 34}}, expect: "2018-02-21T12:34:00"},
		{name: "sql date", src: SQLDate{time.Date(2018, 2, 21, 0, 0, 0, 0, time.UTC)}, expect: "2018-02-21"},
		{name: "time", src: time.Date(2018, 2, 21, 12, 34, 0, 0, time.UTC), expect: "2018-02-21T12:34:00Z"},
		{name: "stringer", src: stringer{}, expect: "stringer"},
		{name: "nil", src: nil, expect: nil},
	})
}

func TestStringConverter_Patterns(t *testing.T) {
	converter, err := NewStringConverter(WithDatePatterns("yyyy/MM/dd"), WithNumberPatterns("#,###"))
	require.NoError(t, err)
	assert.Equal(t, "yyyy/MM/dd", converter.DatePattern())
	assert.Equal(t, "#,###", converter.NumberPattern())
	runCases(t, converter, []conversionCase{
		{name: "local date", src: civil.Date{Year: 2018, Month: 2, Day: 21}, expect: "2018/02/21"},
		{name: "local date time", src: civil.DateTime{Date: civil.Date{Year: 2018, Month: 2, Day: 21}, Time: civil.Time{Hour: 23}}, expect: "2018/02/21"},
		{name: "time", src: time.Date(2018, 2, 21, 12, 0, 0, 0, time.UTC), expect: "2018/02/21"},
		{name: "int", src: 1234567, expect: "1,234,567"},
		{name: "decimal", src: decimal.RequireFromString("9876.7"), expect: "9,877"},
		{name: "float", src: 1234.4, expect: "1,234"},
		{name: "text untouched", src: "1234", expect: "1234"},
	})

	zoned, err := NewStringConverter(WithDatePatterns("yyyy/MM/dd HH:mm"), WithLocation(tokyo))
	require.NoError(t, err)
	actual, err := zoned.Convert(time.Date(2018, 2, 21, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2018/02/22 00:00", actual)
}

func TestStringConverter_Merge(t *testing.T) {
	slash, _ := NewStringConverter(WithDatePatterns("yyyy/MM/dd"))
	dashGrouped, _ := NewStringConverter(WithDatePatterns("yyyy-MM-dd"), WithNumberPatterns("#,###"))
	plain, _ := NewStringConverter()
	date := civil.Date{Year: 2018, Month: 2, Day: 21}

	merged := slash.Merge(dashGrouped)
	actual, _ := merged.Convert(date)
	assert.Equal(t, "2018/02/21", actual, "receiver pattern wins")
	actual, _ = merged.Convert(1000)
	assert.Equal(t, "1,000", actual, "unset receiver pattern falls back to argument")

	adopted := plain.Merge(slash)
	actual, _ = adopted.Convert(date)
	assert.Equal(t, "2018/02/21", actual)

	actual, _ = plain.Convert(date)
	assert.Equal(t, "2018-02-21", actual, "merge must not mutate receiver")
	assert.Equal(t, "", plain.DatePattern())
}

func TestDerive(t *testing.T) {
	base, err := NewLocalDateConverter(WithLocation(tokyo), WithDatePatterns("yyyyMMdd"))
	require.NoError(t, err)
	nullable := Nullable[civil.Date](base)

	derived, err := Derive(nullable, WithDatePatterns("yyyy/MM/dd"))
	require.NoError(t, err)
	actual, err := derived.Convert("2018/02/21")
	require.NoError(t, err)
	assert.Equal(t, &civil.Date{Year: 2018, Month: 2, Day: 21}, actual)

	inner, ok := Unwrap(derived).(*LocalDateConverter)
	require.True(t, ok)
	assert.Equal(t, tokyo, inner.Location(), "unset options are taken from base")
	assert.Equal(t, []string{"yyyy/MM/dd"}, inner.Patterns())

	same, err := Derive(nullable)
	require.NoError(t, err)
	assert.Same(t, nullable, same)

	integer, _ := NewIntegerConverter()
	derived, err = Derive(Primitive[int32](integer), WithNumberPatterns("#,###"))
	require.NoError(t, err)
	actual, err = derived.Convert("1,234")
	require.NoError(t, err)
	assert.Equal(t, int32(1234), actual)

	text, _ := NewStringConverter(WithNumberPatterns("#,###"))
	derived, err = Derive(text, WithDatePatterns("yyyy/MM/dd"))
	require.NoError(t, err)
	actual, _ = derived.Convert(1000)
	assert.Equal(t, "1,000", actual)

	_, err = Derive(NewBooleanConverter(), WithDatePatterns("yyyy"))
	assert.Error(t, err)
	_, err = Derive(base, WithDatePatterns("QQ"))
	assert.Error(t, err)
}

func TestError(t *testing.T) {
	err := NewError(KindUnsupportedSource, "Set", 100, nil)
	assert.Equal(t, "can't convert 100 to Set: unsupported source type", err.Error())
	assert.True(t, errors.Is(err, ErrUnsupportedSource))
	assert.False(t, errors.Is(err, ErrParse))

	parseErr := &Error{Kind: KindParse, Target: "civil.Date", Value: "abc", Patterns: []string{"yyyy/MM/dd", "yyyy.MM.dd"}}
	assert.Equal(t, `can't convert "abc" to civil.Date: unparsable text, patterns [yyyy/MM/dd, yyyy.MM.dd]`, parseErr.Error())

	cause := errors.New("boom")
	wrapped := NewError(KindInstantiation, "*collection.TreeSet[int]", nil, cause)
	assert.True(t, errors.Is(wrapped, cause))
	assert.True(t, errors.Is(wrapped, ErrInstantiation))
	assert.Equal(t, "can't convert nil to *collection.TreeSet[int]: container instantiation failed: boom", wrapped.Error())

	unresolved := NewError(KindUnresolvedType, "chan int", nil, nil)
	assert.Equal(t, "no converter registered for chan int", unresolved.Error())

	kind, ok := KindOf(errors.Join(errors.New("context"), parseErr))
	assert.True(t, ok)
	assert.Equal(t, KindParse, kind)
	_, ok = KindOf(cause)
	assert.False(t, ok)
	assert.Equal(t, "unresolved target type", KindUnresolvedType.String())
}
