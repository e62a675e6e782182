package conv

import (
	"database/sql/driver"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	ftime "github.com/viant/coerce/format/time"
)

const (
	sqlDateLayout      = "2006-01-02"
	sqlTimestampLayout = "2006-01-02 15:04:05.999999999"
)

// Calendar represents calendar like values, i.e. *timestamppb.Timestamp
type Calendar interface {
	AsTime() time.Time
}

// SQLDate represents a date without time of day, stored as midnight in its location
type SQLDate struct {
	time.Time
}

func (d SQLDate) String() string {
	return d.Format(sqlDateLayout)
}

// Value implements driver.Valuer
func (d SQLDate) Value() (driver.Value, error) {
	return d.Time, nil
}

// SQLTimestamp represents a database timestamp
type SQLTimestamp struct {
	time.Time
}

func (t SQLTimestamp) String() string {
	return t.Format(sqlTimestampLayout)
}

// Value implements driver.Valuer
func (t SQLTimestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

// OffsetDateTime represents a date time with a fixed offset
type OffsetDateTime struct {
	time.Time
}

func (t OffsetDateTime) String() string {
	return t.Format(time.RFC3339Nano)
}

var (
	compactDate        = ftime.MustPatterns("yyyyMMdd")
	isoLocalDateTime   = ftime.LayoutPatterns("2006-01-02T15:04:05", time.RFC3339)
	isoOffsetDateTime  = ftime.LayoutPatterns(time.RFC3339)
	errUnsupportedTime = errors.New("not a temporal value")
)

// dateFormat holds pattern and zone configuration shared by temporal converters
type dateFormat struct {
	patterns *ftime.Patterns
	location *time.Location
}

func newDateFormat(opts []Option) (dateFormat, error) {
	o := newOptions(opts)
	patterns, err := o.dates()
	if err != nil {
		return dateFormat{}, err
	}
	return dateFormat{patterns: patterns, location: o.location}, nil
}

func (f dateFormat) merge(other dateFormat) dateFormat {
	if f.patterns == nil {
		f.patterns = other.patterns
	}
	if f.location == nil {
		f.location = other.location
	}
	return f
}

func (f dateFormat) loc() *time.Location {
	if f.location == nil {
		return time.UTC
	}
	return f.location
}

// Patterns returns configured patterns
func (f dateFormat) Patterns() []string {
	if f.patterns == nil {
		return nil
	}
	return f.patterns.Strings()
}

// Location returns configured default zone, nil when not configured
func (f dateFormat) Location() *time.Location {
	return f.location
}

func (f dateFormat) parse(text string, defaults *ftime.Patterns, target string) (time.Time, error) {
	patterns := f.patterns
	if patterns == nil {
		patterns = defaults
	}
	ts, err := patterns.Parse(text, f.loc())
	if err != nil {
		return ts, &Error{Kind: KindParse, Target: target, Value: text, Patterns: patterns.Strings()}
	}
	return ts, nil
}

// instant returns the point in time of a temporal value, local values are interpreted in loc
func instant(value any, loc *time.Location) (time.Time, bool) {
	switch actual := value.(type) {
	case time.Time:
		return actual, true
	case SQLDate:
		return actual.Time, true
	case SQLTimestamp:
		return actual.Time, true
	case OffsetDateTime:
		return actual.Time, true
	case civil.Date:
		return actual.In(loc), true
	case civil.DateTime:
		return actual.In(loc), true
	case Calendar:
		return actual.AsTime(), true
	}
	return time.Time{}, false
}
