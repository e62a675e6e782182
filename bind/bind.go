// Package bind populates structs from loosely typed records.
//
// Record keys are matched with the format tag name, the field name in the binder case format,
// or case insensitively with the field name. Field level patterns come from format tag
// dateFormat/timeLayout and coerce tag, i.e.
//
//	type Order struct {
//		Placed civil.Date `coerce:"datePatterns={yyyy/MM/dd|yyyyMMdd}"`
//		Amount int64      `format:"name=amt" coerce:"numberPatterns={#,###}"`
//	}
package bind

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/viant/coerce"
	"github.com/viant/coerce/visitor"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// Binder binds records to structs, it is safe for concurrent use
type Binder struct {
	registry   *coerce.Registry
	caseFormat text.CaseFormat
	strict     bool
	plans      *visitor.SyncMap[reflect.Type, *plan]
}

// New creates a binder
func New(registry *coerce.Registry, opts ...Option) *Binder {
	ret := &Binder{registry: registry, plans: visitor.NewSyncMap[reflect.Type, *plan]()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Bind sets fields of target struct pointer from record, fields without record key are left untouched
func (b *Binder) Bind(record map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected non nil struct pointer, but had %T", target)
	}
	structType := rv.Elem().Type()
	aPlan, err := b.plans.Load(structType, b.newPlan)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	ptr := xunsafe.AsPointer(target)
	for _, key := range keys {
		aField := aPlan.lookup(key)
		if aField == nil {
			if b.strict {
				return fmt.Errorf("failed to bind %v: unknown key %q", structType.Name(), key)
			}
			continue
		}
		value, err := aField.converter.Convert(record[key])
		if err != nil {
			return fmt.Errorf("failed to bind %v.%v: %w", structType.Name(), aField.name, err)
		}
		if isNil(value) || aField.xField.Type.Kind() == reflect.Interface {
			setValue(rv.Elem().Field(aField.index), value)
			continue
		}
		aField.xField.SetValue(ptr, value)
	}
	return nil
}

// Fields returns record keys of bindable fields of a struct type
func (b *Binder) Fields(structType reflect.Type) ([]string, error) {
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, but had %v", structType)
	}
	aPlan, err := b.plans.Load(structType, b.newPlan)
	if err != nil {
		return nil, err
	}
	ret := make([]string, len(aPlan.fields))
	for i, aField := range aPlan.fields {
		ret[i] = aField.key
	}
	return ret, nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func setValue(fieldValue reflect.Value, value any) {
	if value == nil {
		fieldValue.Set(reflect.Zero(fieldValue.Type()))
		return
	}
	fieldValue.Set(reflect.ValueOf(value))
}
