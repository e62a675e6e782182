package conv

import (
	"time"

	"cloud.google.com/go/civil"
)

var (
	dateTarget         = TypeName[time.Time]()
	sqlDateTarget      = TypeName[SQLDate]()
	sqlTimestampTarget = TypeName[SQLTimestamp]()
)

// DateConverter converts temporal values and text to time.Time expressed in the converter location
type DateConverter struct {
	dateFormat
}

func NewDateConverter(opts ...Option) (*DateConverter, error) {
	format, err := newDateFormat(opts)
	if err != nil {
		return nil, err
	}
	return &DateConverter{dateFormat: format}, nil
}

// Merge returns converter using receiver patterns and location when set, other's otherwise
func (c *DateConverter) Merge(other *DateConverter) *DateConverter {
	if other == nil {
		return &DateConverter{dateFormat: c.dateFormat}
	}
	return &DateConverter{dateFormat: c.dateFormat.merge(other.dateFormat)}
}

func (c *DateConverter) Convert(value any) (any, error) {
	return scalar(value, dateTarget, c.convert)
}

func (c *DateConverter) convert(value any) (any, error) {
	if ts, ok := value.(time.Time); ok {
		return ts, nil
	}
	loc := c.loc()
	if text, ok := textOf(value); ok {
		if text == "" {
			return nil, nil
		}
		ts, err := c.parse(text, compactDate, dateTarget)
		if err != nil {
			return nil, err
		}
		return ts.In(loc), nil
	}
	if ts, ok := instant(value, loc); ok {
		return ts.In(loc), nil
	}
	return nil, NewError(KindUnsupportedSource, dateTarget, value, errUnsupportedTime)
}

// SQLDateConverter converts temporal values and text to SQLDate, time of day is truncated
type SQLDateConverter struct {
	dateFormat
}

func NewSQLDateConverter(opts ...Option) (*SQLDateConverter, error) {
	format, err := newDateFormat(opts)
	if err != nil {
		return nil, err
	}
	return &SQLDateConverter{dateFormat: format}, nil
}

// Merge returns converter using receiver patterns and location when set, other's otherwise
func (c *SQLDateConverter) Merge(other *SQLDateConverter) *SQLDateConverter {
	if other == nil {
		return &SQLDateConverter{dateFormat: c.dateFormat}
	}
	return &SQLDateConverter{dateFormat: c.dateFormat.merge(other.dateFormat)}
}

func (c *SQLDateConverter) Convert(value any) (any, error) {
	return scalar(value, sqlDateTarget, c.convert)
}

func (c *SQLDateConverter) convert(value any) (any, error) {
	loc := c.loc()
	switch actual := value.(type) {
	case SQLDate:
		return actual, nil
	case civil.Date:
		return SQLDate{actual.In(loc)}, nil
	case civil.DateTime:
		return SQLDate{actual.Date.In(loc)}, nil
	}
	if text, ok := textOf(value); ok {
		if text == "" {
			return nil, nil
		}
		ts, err := c.parse(text, compactDate, sqlDateTarget)
		if err != nil {
			return nil, err
		}
		return SQLDate{civil.DateOf(ts).In(loc)}, nil
	}
	if ts, ok := instant(value, loc); ok {
		return SQLDate{civil.DateOf(ts.In(loc)).In(loc)}, nil
	}
	return nil, NewError(KindUnsupportedSource, sqlDateTarget, value, errUnsupportedTime)
}

// SQLTimestampConverter converts temporal values and text to SQLTimestamp
type SQLTimestampConverter struct {
	dateFormat
}

func NewSQLTimestampConverter(opts ...Option) (*SQLTimestampConverter, error) {
	format, err := newDateFormat(opts)
	if err != nil {
		return nil, err
	}
	return &SQLTimestampConverter{dateFormat: format}, nil
}

// Merge returns converter using receiver patterns and location when set, other's otherwise
func (c *SQLTimestampConverter) Merge(other *SQLTimestampConverter) *SQLTimestampConverter {
	if other == nil {
		return &SQLTimestampConverter{dateFormat: c.dateFormat}
	}
	return &SQLTimestampConverter{dateFormat: c.dateFormat.merge(other.dateFormat)}
}

func (c *SQLTimestampConverter) Convert(value any) (any, error) {
	return scalar(value, sqlTimestampTarget, c.convert)
}

func (c *SQLTimestampConverter) convert(value any) (any, error) {
	if ts, ok := value.(SQLTimestamp); ok {
		return ts, nil
	}
	loc := c.loc()
	if text, ok := textOf(value); ok {
		if text == "" {
			return nil, nil
		}
		ts, err := c.parse(text, compactDate, sqlTimestampTarget)
		if err != nil {
			return nil, err
		}
		return SQLTimestamp{ts.In(loc)}, nil
	}
	if ts, ok := instant(value, loc); ok {
		return SQLTimestamp{ts.In(loc)}, nil
	}
	return nil, NewError(KindUnsupportedSource, sqlTimestampTarget, value, errUnsupportedTime)
}
