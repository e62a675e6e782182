package conv

import (
	"time"

	"github.com/viant/coerce/format/number"
	ftime "github.com/viant/coerce/format/time"
)

// Option configures a converter
type Option func(o *options)

type options struct {
	datePatterns   []string
	timeLayouts    []string
	numberPatterns []string
	location       *time.Location
}

// WithDatePatterns sets ordered date patterns, i.e. yyyy/MM/dd
func WithDatePatterns(patterns ...string) Option {
	return func(o *options) {
		o.datePatterns = append(o.datePatterns, patterns...)
	}
}

// WithTimeLayouts sets ordered Go time layouts, they are tried after date patterns
func WithTimeLayouts(layouts ...string) Option {
	return func(o *options) {
		o.timeLayouts = append(o.timeLayouts, layouts...)
	}
}

// WithNumberPatterns sets ordered number patterns, i.e. #,###.##
func WithNumberPatterns(patterns ...string) Option {
	return func(o *options) {
		o.numberPatterns = append(o.numberPatterns, patterns...)
	}
}

// WithLocation sets default zone used for values without zone information
func WithLocation(location *time.Location) Option {
	return func(o *options) {
		o.location = location
	}
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (o *options) dates() (*ftime.Patterns, error) {
	if len(o.datePatterns) == 0 && len(o.timeLayouts) == 0 {
		return nil, nil
	}
	layouts := make([]*ftime.Layout, 0, len(o.datePatterns)+len(o.timeLayouts))
	for _, pattern := range o.datePatterns {
		layout, err := ftime.Compile(pattern)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, layout)
	}
	for _, layout := range o.timeLayouts {
		layouts = append(layouts, ftime.GoLayout(layout))
	}
	return ftime.Of(layouts...), nil
}

func (o *options) numbers() (*number.Patterns, error) {
	if len(o.numberPatterns) == 0 {
		return nil, nil
	}
	return number.NewPatterns(o.numberPatterns...)
}
