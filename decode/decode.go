// Package decode decodes maps into structs converting leaf values with a coerce registry.
package decode

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/viant/coerce"
)

// Option configures decoder
type Option func(config *mapstructure.DecoderConfig)

// WithTagName sets struct tag name, mapstructure by default
func WithTagName(name string) Option {
	return func(config *mapstructure.DecoderConfig) {
		config.TagName = name
	}
}

// WithErrorUnused fails decoding when input has keys not mapped to fields
func WithErrorUnused() Option {
	return func(config *mapstructure.DecoderConfig) {
		config.ErrorUnused = true
	}
}

// WithZeroFields zeroes fields before decoding
func WithZeroFields() Option {
	return func(config *mapstructure.DecoderConfig) {
		config.ZeroFields = true
	}
}

// Hook returns decode hook converting data to target types that registry has exact converters for
func Hook(registry *coerce.Registry) mapstructure.DecodeHookFuncType {
	converters := registry.Converters()
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from == to {
			return data, nil
		}
		converter, ok := converters[to]
		if !ok {
			return data, nil
		}
		ret, err := converter.Convert(data)
		if err != nil {
			return nil, err
		}
		if isNil(ret) {
			if to.Kind() == reflect.Pointer {
				return nil, nil
			}
			return reflect.Zero(to).Interface(), nil
		}
		return ret, nil
	}
}

// Decode decodes input into output pointer
func Decode(registry *coerce.Registry, input any, output any, opts ...Option) error {
	config := &mapstructure.DecoderConfig{
		Result:           output,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		// registry hook stays last, composed hooks can not follow an untyped nil
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			Hook(registry),
		),
	}
	for _, opt := range opts {
		opt(config)
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err = decoder.Decode(input); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

// isNil returns true for nil and nil pointers, mapstructure treats only untyped nil as absent pointer value
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
