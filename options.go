package coerce

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/coerce/collection"
	"github.com/viant/coerce/conv"
)

// Option configures a registry
type Option func(o *options)

// Options represents registry options
type Options []Option

// Apply applies options
func (o Options) Apply(opts *options) {
	for _, opt := range o {
		opt(opts)
	}
}

type options struct {
	location       *time.Location
	datePatterns   []string
	numberPatterns []string
	converters     map[reflect.Type]conv.Converter
	extensions     []ExtensionConverter
	factories      map[reflect.Type]Factory
	err            error
}

func (o *options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithLocation sets default zone of temporal converters, UTC by default
func WithLocation(location *time.Location) Option {
	return func(o *options) {
		if location == nil {
			o.fail(fmt.Errorf("location was nil"))
			return
		}
		o.location = location
	}
}

// WithDatePatterns sets ordered date patterns of temporal converters, the first one is also used for formatting text
func WithDatePatterns(patterns ...string) Option {
	return func(o *options) {
		o.datePatterns = append(o.datePatterns, patterns...)
	}
}

// WithNumberPatterns sets ordered number patterns of integer and decimal converters, the first one is also used for formatting text
func WithNumberPatterns(patterns ...string) Option {
	return func(o *options) {
		o.numberPatterns = append(o.numberPatterns, patterns...)
	}
}

// WithConverter registers converter for target type, it overrides built-in converter
func WithConverter(target reflect.Type, converter conv.Converter) Option {
	return func(o *options) {
		if target == nil || converter == nil {
			o.fail(fmt.Errorf("invalid converter registration: %v => %v", target, converter))
			return
		}
		if o.converters == nil {
			o.converters = map[reflect.Type]conv.Converter{}
		}
		o.converters[target] = converter
	}
}

// Register registers converter for T
func Register[T any](converter conv.Converter) Option {
	return WithConverter(TypeOf[T](), converter)
}

// WithExtension appends extension converter, it is tried after built-in extensions
func WithExtension(extension ExtensionConverter) Option {
	return func(o *options) {
		if extension == nil {
			o.fail(fmt.Errorf("extension was nil"))
			return
		}
		o.extensions = append(o.extensions, extension)
	}
}

// WithCollection registers factory of collection type C, i.e. *collection.TreeSet[int]
func WithCollection[C collection.Collection](factory func() C) Option {
	return func(o *options) {
		target := TypeOf[C]()
		if factory == nil {
			o.fail(fmt.Errorf("factory of %v was nil", target))
			return
		}
		if o.factories == nil {
			o.factories = map[reflect.Type]Factory{}
		}
		o.factories[target] = func() collection.Collection {
			return factory()
		}
	}
}
