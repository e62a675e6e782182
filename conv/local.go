package conv

import (
	"cloud.google.com/go/civil"
)

var (
	localDateTarget      = TypeName[civil.Date]()
	localDateTimeTarget  = TypeName[civil.DateTime]()
	offsetDateTimeTarget = TypeName[OffsetDateTime]()
)

// LocalDateConverter converts temporal values and text to civil.Date.
// Zoned values are expressed in the converter location before truncation.
type LocalDateConverter struct {
	dateFormat
}

func NewLocalDateConverter(opts ...Option) (*LocalDateConverter, error) {
	format, err := newDateFormat(opts)
	if err != nil {
		return nil, err
	}
	return &LocalDateConverter{dateFormat: format}, nil
}

// Merge returns converter using receiver patterns and location when set, other's otherwise
func (c *LocalDateConverter) Merge(other *LocalDateConverter) *LocalDateConverter {
	if other == nil {
		return &LocalDateConverter{dateFormat: c.dateFormat}
	}
	return &LocalDateConverter{dateFormat: c.dateFormat.merge(other.dateFormat)}
}

func (c *LocalDateConverter) Convert(value any) (any, error) {
	return scalar(value, localDateTarget, c.convert)
}

func (c *LocalDateConverter) convert(value any) (any, error) {
	switch actual := value.(type) {
	case civil.Date:
		return actual, nil
	case civil.DateTime:
		return actual.Date, nil
	case SQLDate:
		return civil.DateOf(actual.Time), nil
	}
	if text, ok := textOf(value); ok {
		if text == "" {
			return nil, nil
		}
		ts, err := c.parse(text, compactDate, localDateTarget)
		if err != nil {
			return nil, err
		}
		return civil.DateOf(ts), nil
	}
	loc := c.loc()
	if ts, ok := instant(value, loc); ok {
		return civil.DateOf(ts.In(loc)), nil
	}
	return nil, NewError(KindUnsupportedSource, localDateTarget, value, errUnsupportedTime)
}

// LocalDateTimeConverter converts temporal values and text to civil.DateTime.
// Zoned values are expressed in the converter location, parsed text keeps its written wall clock.
type LocalDateTimeConverter struct {
	dateFormat
}

func NewLocalDateTimeConverter(opts ...Option) (*LocalDateTimeConverter, error) {
	format, err := newDateFormat(opts)
	if err != nil {
		return nil, err
	}
	return &LocalDateTimeConverter{dateFormat: format}, nil
}

// Merge returns converter using receiver patterns and location when set, other's otherwise
func (c *LocalDateTimeConverter) Merge(other *LocalDateTimeConverter) *LocalDateTimeConverter {
	if other == nil {
		return &LocalDateTimeConverter{dateFormat: c.dateFormat}
	}
	return &LocalDateTimeConverter{dateFormat: c.dateFormat.merge(other.dateFormat)}
}

func (c *LocalDateTimeConverter) Convert(value any) (any, error) {
	return scalar(value, localDateTimeTarget, c.convert)
}

func (c *LocalDateTimeConverter) convert(value any) (any, error) {
	switch actual := value.(type) {
	case civil.DateTime:
		return actual, nil
	case civil.Date:
		return civil.DateTime{Date: actual}, nil
	case SQLDate:
		return civil.DateTime{Date: civil.DateOf(actual.Time)}, nil
	}
	if text, ok := textOf(value); ok {
		if text == "" {
			return nil, nil
		}
		ts, err := c.parse(text, isoLocalDateTime, localDateTimeTarget)
		if err != nil {
			return nil, err
		}
		return civil.DateTimeOf(ts), nil
	}
	loc := c.loc()
	if ts, ok := instant(value, loc); ok {
		return civil.DateTimeOf(ts.In(loc)), nil
	}
	return nil, NewError(KindUnsupportedSource, localDateTimeTarget, value, errUnsupportedTime)
}

// OffsetDateTimeConverter converts temporal values and text to OffsetDateTime.
// Values without zone information are expressed in the converter location.
type OffsetDateTimeConverter struct {
	dateFormat
}

func NewOffsetDateTimeConverter(opts ...Option) (*OffsetDateTimeConverter, error) {
	format, err := newDateFormat(opts)
	if err != nil {
		return nil, err
	}
	return &OffsetDateTimeConverter{dateFormat: format}, nil
}

// Merge returns converter using receiver patterns and location when set, other's otherwise
func (c *OffsetDateTimeConverter) Merge(other *OffsetDateTimeConverter) *OffsetDateTimeConverter {
	if other == nil {
		return &OffsetDateTimeConverter{dateFormat: c.dateFormat}
	}
	return &OffsetDateTimeConverter{dateFormat: c.dateFormat.merge(other.dateFormat)}
}

func (c *OffsetDateTimeConverter) Convert(value any) (any, error) {
	return scalar(value, offsetDateTimeTarget, c.convert)
}

func (c *OffsetDateTimeConverter) convert(value any) (any, error) {
	if ts, ok := value.(OffsetDateTime); ok {
		return ts, nil
	}
	if text, ok := textOf(value); ok {
		if text == "" {
			return nil, nil
		}
		ts, err := c.parse(text, isoOffsetDateTime, offsetDateTimeTarget)
		if err != nil {
			return nil, err
		}
		return OffsetDateTime{ts}, nil
	}
	loc := c.loc()
	if ts, ok := instant(value, loc); ok {
		return OffsetDateTime{ts.In(loc)}, nil
	}
	return nil, NewError(KindUnsupportedSource, offsetDateTimeTarget, value, errUnsupportedTime)
}
