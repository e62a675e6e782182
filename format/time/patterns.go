package time

import (
	"fmt"
	"strings"
	"time"
)

// MismatchError reports a value that none of the patterns could parse
type MismatchError struct {
	Value    string
	Patterns []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%q was not formatted [%s]", e.Value, strings.Join(e.Patterns, ", "))
}

// Patterns represents an ordered, non empty list of layouts
type Patterns struct {
	layouts []*Layout
}

// NewPatterns compiles date patterns in the supplied order
func NewPatterns(patterns ...string) (*Patterns, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("date patterns were empty")
	}
	ret := &Patterns{layouts: make([]*Layout, 0, len(patterns))}
	for _, pattern := range patterns {
		layout, err := Compile(pattern)
		if err != nil {
			return nil, err
		}
		ret.layouts = append(ret.layouts, layout)
	}
	return ret, nil
}

// MustPatterns is like NewPatterns but panics on invalid pattern
func MustPatterns(patterns ...string) *Patterns {
	ret, err := NewPatterns(patterns...)
	if err != nil {
		panic(err)
	}
	return ret
}

// LayoutPatterns creates patterns from Go native layouts
func LayoutPatterns(layouts ...string) *Patterns {
	ret := &Patterns{layouts: make([]*Layout, 0, len(layouts))}
	for _, layout := range layouts {
		ret.layouts = append(ret.layouts, GoLayout(layout))
	}
	return ret
}

// Parse tries each layout in order and returns the first full match
func (p *Patterns) Parse(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range p.layouts {
		if ts, err := layout.Parse(value, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, &MismatchError{Value: value, Patterns: p.Strings()}
}

// Format formats ts with the first layout
func (p *Patterns) Format(ts time.Time) string {
	return p.layouts[0].Format(ts)
}

// First returns the formatting layout
func (p *Patterns) First() *Layout {
	return p.layouts[0]
}

// Strings returns the configured source patterns
func (p *Patterns) Strings() []string {
	ret := make([]string, len(p.layouts))
	for i, layout := range p.layouts {
		ret[i] = layout.Pattern
	}
	return ret
}

func (p *Patterns) Len() int {
	return len(p.layouts)
}

// Of creates patterns from already compiled layouts
func Of(layouts ...*Layout) *Patterns {
	return &Patterns{layouts: layouts}
}
