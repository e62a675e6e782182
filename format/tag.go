// Package format parses per field conversion settings from struct tags.
package format

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/coerce/conv"
	"github.com/viant/parsly"
)

const (
	TagName = "coerce"
	// listSeparator separates patterns of a list value, i.e. {yyyy/MM/dd|yyyyMMdd}
	listSeparator = "|"
)

// Tag represents coerce tag, i.e. coerce:"datePatterns={yyyy/MM/dd|yyyy.MM.dd},numberPatterns={#,###},zone=Asia/Tokyo"
type Tag struct {
	DatePatterns   []string
	TimeLayouts    []string
	NumberPatterns []string
	Location       *time.Location
}

// IsEmpty returns true when tag defines no settings
func (t *Tag) IsEmpty() bool {
	return len(t.DatePatterns) == 0 && len(t.TimeLayouts) == 0 && len(t.NumberPatterns) == 0 && t.Location == nil
}

// Options returns converter options
func (t *Tag) Options() []conv.Option {
	var ret []conv.Option
	if len(t.DatePatterns) > 0 {
		ret = append(ret, conv.WithDatePatterns(t.DatePatterns...))
	}
	if len(t.TimeLayouts) > 0 {
		ret = append(ret, conv.WithTimeLayouts(t.TimeLayouts...))
	}
	if len(t.NumberPatterns) > 0 {
		ret = append(ret, conv.WithNumberPatterns(t.NumberPatterns...))
	}
	if t.Location != nil {
		ret = append(ret, conv.WithLocation(t.Location))
	}
	return ret
}

func (t *Tag) update(key string, value string) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "datepatterns", "datepattern", "dateformat":
		t.DatePatterns = append(t.DatePatterns, split(value)...)
	case "timelayouts", "timelayout":
		t.TimeLayouts = append(t.TimeLayouts, split(value)...)
	case "numberpatterns", "numberpattern", "numberformat":
		t.NumberPatterns = append(t.NumberPatterns, split(value)...)
	case "zone", "location", "timezone":
		location, err := time.LoadLocation(value)
		if err != nil {
			return fmt.Errorf("invalid zone %q: %w", value, err)
		}
		t.Location = location
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

// Parse parses coerce tag, nil is returned when the field has no coerce tag
func Parse(tag reflect.StructTag) (*Tag, error) {
	encoded, ok := tag.Lookup(TagName)
	if !ok || encoded == "" {
		return nil, nil
	}
	ret := &Tag{}
	cursor := parsly.NewCursor("", []byte(encoded), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value, dangling := matchPair(cursor)
		if dangling != "" {
			return nil, fmt.Errorf("invalid %s tag %q: expected key=value, but had %q, use {} to enclose values with ','", TagName, encoded, dangling)
		}
		if key == "" {
			continue
		}
		if err := ret.update(key, value); err != nil {
			return nil, fmt.Errorf("invalid %s tag %q: %w", TagName, encoded, err)
		}
	}
	return ret, nil
}

func split(value string) []string {
	var ret []string
	for _, item := range strings.Split(value, listSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}
	return ret
}

// matchPair matches key=value, dangling holds a non blank segment without '='
func matchPair(cursor *parsly.Cursor) (key string, value string, dangling string) {
	eqIndex := bytes.IndexByte(cursor.Input[cursor.Pos:], '=')
	comaIndex := bytes.IndexByte(cursor.Input[cursor.Pos:], ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		start := cursor.Pos
		segment := ""
		match := cursor.MatchAny(comaTerminatorMatcher)
		if match.Code == comaTerminatorToken {
			segment = string(cursor.Input[start : cursor.Pos-1])
		} else {
			segment = string(cursor.Input[start:])
			cursor.Pos = len(cursor.Input)
		}
		return "", "", strings.TrimSpace(segment)
	}
	match := cursor.MatchAny(eqTerminatorMatcher)
	if match.Code != eqTerminatorToken {
		cursor.Pos = len(cursor.Input)
		return "", "", ""
	}
	key = match.Text(cursor)
	key = key[:len(key)-1]
	match = cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return key, value, ""
}
