package coerce

import (
	"reflect"

	"github.com/viant/coerce/conv"
)

// ExtensionConverter converts values to a family of structurally related types
type ExtensionConverter interface {
	IsConvertible(target reflect.Type) bool
	Convert(target reflect.Type, value any) (any, error)
}

// Resolver resolves converter for a target type
type Resolver interface {
	Resolve(target reflect.Type) (conv.Converter, error)
}

// adapt binds extension converter to target type
func adapt(extension ExtensionConverter, target reflect.Type) conv.Converter {
	return conv.Func(func(value any) (any, error) {
		return extension.Convert(target, value)
	})
}
