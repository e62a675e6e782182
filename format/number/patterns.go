package number

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MismatchError reports a text that none of the patterns could parse
type MismatchError struct {
	Value    string
	Patterns []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%q was not formatted [%s]", e.Value, strings.Join(e.Patterns, ", "))
}

// Patterns represents an ordered, non empty list of number patterns
type Patterns struct {
	patterns []*Pattern
}

// NewPatterns compiles number patterns in the supplied order
func NewPatterns(sources ...string) (*Patterns, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("number patterns were empty")
	}
	ret := &Patterns{patterns: make([]*Pattern, 0, len(sources))}
	for _, source := range sources {
		pattern, err := Compile(source)
		if err != nil {
			return nil, err
		}
		ret.patterns = append(ret.patterns, pattern)
	}
	return ret, nil
}

// Parse tries each pattern in order and returns the first full match
func (p *Patterns) Parse(text string) (decimal.Decimal, error) {
	for _, pattern := range p.patterns {
		if value, ok := pattern.Parse(text); ok {
			return value, nil
		}
	}
	return decimal.Zero, &MismatchError{Value: text, Patterns: p.Strings()}
}

// Format formats value with the first pattern
func (p *Patterns) Format(value decimal.Decimal) string {
	return p.patterns[0].Format(value)
}

// Strings returns source patterns
func (p *Patterns) Strings() []string {
	ret := make([]string, len(p.patterns))
	for i, pattern := range p.patterns {
		ret[i] = pattern.source
	}
	return ret
}

func (p *Patterns) Len() int {
	return len(p.patterns)
}
