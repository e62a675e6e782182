package coerce

import (
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/viant/coerce/conv"
)

type table map[reflect.Type]conv.Converter

// put registers primitive variant for T and nullable variant for *T
func put[T any](t table, converter conv.Converter) {
	t[TypeOf[T]()] = conv.Primitive[T](converter)
	t[TypeOf[*T]()] = conv.Nullable[T](converter)
}

func builtins(o *options) (table, error) {
	dateOptions := []conv.Option{conv.WithLocation(o.location), conv.WithDatePatterns(o.datePatterns...)}
	numberOptions := []conv.Option{conv.WithNumberPatterns(o.numberPatterns...)}
	ret := table{}

	text, err := stringConverter(o)
	if err != nil {
		return nil, err
	}
	put[string](ret, text)
	put[bool](ret, conv.NewBooleanConverter())

	short, err := conv.NewShortConverter(numberOptions...)
	if err != nil {
		return nil, err
	}
	put[int16](ret, short)
	integer, err := conv.NewIntegerConverter(numberOptions...)
	if err != nil {
		return nil, err
	}
	put[int32](ret, integer)
	intConverter, err := conv.NewIntConverter(numberOptions...)
	if err != nil {
		return nil, err
	}
	put[int](ret, intConverter)
	long, err := conv.NewLongConverter(numberOptions...)
	if err != nil {
		return nil, err
	}
	put[int64](ret, long)
	dec, err := conv.NewDecimalConverter(numberOptions...)
	if err != nil {
		return nil, err
	}
	put[decimal.Decimal](ret, dec)

	date, err := conv.NewDateConverter(dateOptions...)
	if err != nil {
		return nil, err
	}
	put[time.Time](ret, date)
	sqlDate, err := conv.NewSQLDateConverter(dateOptions...)
	if err != nil {
		return nil, err
	}
	put[conv.SQLDate](ret, sqlDate)
	sqlTimestamp, err := conv.NewSQLTimestampConverter(dateOptions...)
	if err != nil {
		return nil, err
	}
	put[conv.SQLTimestamp](ret, sqlTimestamp)
	localDate, err := conv.NewLocalDateConverter(dateOptions...)
	if err != nil {
		return nil, err
	}
	put[civil.Date](ret, localDate)
	localDateTime, err := conv.NewLocalDateTimeConverter(dateOptions...)
	if err != nil {
		return nil, err
	}
	put[civil.DateTime](ret, localDateTime)
	offset, err := conv.NewOffsetDateTimeConverter(dateOptions...)
	if err != nil {
		return nil, err
	}
	put[conv.OffsetDateTime](ret, offset)

	ret[TypeOf[[]byte]()] = conv.Primitive[[]byte](conv.NewBytesConverter())
	ret[TypeOf[[]string]()] = conv.Primitive[[]string](conv.NewStringArrayConverter(text))
	ret[TypeOf[[]any]()] = conv.Primitive[[]any](conv.NewObjectArrayConverter())
	return ret, nil
}

// stringConverter merges first configured patterns under the default string converter
func stringConverter(o *options) (*conv.StringConverter, error) {
	ret, err := conv.NewStringConverter(conv.WithLocation(o.location))
	if err != nil {
		return nil, err
	}
	if len(o.datePatterns) > 0 {
		patterned, err := conv.NewStringConverter(conv.WithDatePatterns(o.datePatterns[0]))
		if err != nil {
			return nil, err
		}
		ret = ret.Merge(patterned)
	}
	if len(o.numberPatterns) > 0 {
		patterned, err := conv.NewStringConverter(conv.WithNumberPatterns(o.numberPatterns[0]))
		if err != nil {
			return nil, err
		}
		ret = ret.Merge(patterned)
	}
	return ret, nil
}
