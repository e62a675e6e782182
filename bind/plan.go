package bind

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/coerce/conv"
	cformat "github.com/viant/coerce/format"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	field struct {
		name      string
		key       string
		index     int
		xField    *xunsafe.Field
		converter conv.Converter
	}

	plan struct {
		fields []*field
		byKey  map[string]*field
		byFold map[string]*field
	}
)

func (p *plan) lookup(key string) *field {
	if ret, ok := p.byKey[key]; ok {
		return ret
	}
	return p.byFold[strings.ToLower(key)]
}

func (b *Binder) newPlan(structType reflect.Type) (*plan, error) {
	xStruct := xunsafe.NewStruct(structType)
	ret := &plan{byKey: map[string]*field{}, byFold: map[string]*field{}}
	for i := range xStruct.Fields {
		structField := structType.Field(i)
		if !structField.IsExported() {
			continue
		}
		xField := &xStruct.Fields[i]
		tag, err := format.Parse(structField.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid format tag of %v.%v: %w", structType.Name(), structField.Name, err)
		}
		if tag != nil && tag.Ignore {
			continue
		}
		converter, err := b.fieldConverter(structField, tag)
		if err != nil {
			return nil, fmt.Errorf("failed to build converter of %v.%v: %w", structType.Name(), structField.Name, err)
		}
		aField := &field{name: structField.Name, key: b.key(structField, tag), index: i, xField: xField, converter: converter}
		ret.fields = append(ret.fields, aField)
		ret.byKey[aField.key] = aField
		if _, ok := ret.byFold[strings.ToLower(aField.key)]; !ok {
			ret.byFold[strings.ToLower(aField.key)] = aField
		}
		if _, ok := ret.byFold[strings.ToLower(aField.name)]; !ok {
			ret.byFold[strings.ToLower(aField.name)] = aField
		}
	}
	return ret, nil
}

// key returns record key of a field: tag name, field name in binder case format or field name
func (b *Binder) key(structField reflect.StructField, tag *format.Tag) string {
	if tag != nil && tag.Name != "" {
		return tag.Name
	}
	name := structField.Name
	if b.caseFormat == "" || b.caseFormat == text.CaseFormatUndefined {
		return name
	}
	if name == "ID" {
		switch b.caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, b.caseFormat)
}

// fieldConverter derives field specific converter when field tags define patterns
func (b *Binder) fieldConverter(structField reflect.StructField, tag *format.Tag) (conv.Converter, error) {
	converter, err := b.registry.Resolve(structField.Type)
	if err != nil {
		return nil, err
	}
	var opts []conv.Option
	if tag != nil {
		switch {
		case tag.DateFormat != "":
			opts = append(opts, conv.WithDatePatterns(tag.DateFormat))
		case tag.TimeLayout != "":
			opts = append(opts, conv.WithTimeLayouts(tag.TimeLayout))
		}
	}
	coerceTag, err := cformat.Parse(structField.Tag)
	if err != nil {
		return nil, err
	}
	if coerceTag != nil {
		opts = append(coerceTag.Options(), opts...)
	}
	if len(opts) == 0 {
		return converter, nil
	}
	return conv.Derive(converter, opts...)
}
