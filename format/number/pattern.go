// Package number compiles decimal format patterns such as #,##0.00 and uses them to parse and format numbers.
package number

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const placeholders = "#0,."

// Pattern represents a compiled decimal format pattern
type Pattern struct {
	source    string
	prefix    string
	suffix    string
	groupSize int
	minInt    int
	minFrac   int
	maxFrac   int
}

// Compile compiles decimal format pattern, i.e. #,###.## or $0.00
func Compile(source string) (*Pattern, error) {
	start := strings.IndexAny(source, placeholders)
	if start == -1 {
		return nil, fmt.Errorf("invalid number pattern %q: no digit placeholder", source)
	}
	end := start
	for end < len(source) && strings.IndexByte(placeholders, source[end]) != -1 {
		end++
	}
	ret := &Pattern{source: source, prefix: source[:start], suffix: source[end:]}
	if strings.ContainsAny(ret.prefix+ret.suffix, "#0;%‰") {
		return nil, fmt.Errorf("invalid number pattern %q: unsupported affix", source)
	}
	core := source[start:end]
	integer, fraction, hasPoint := strings.Cut(core, ".")
	if hasPoint && strings.ContainsAny(fraction, ",.") {
		return nil, fmt.Errorf("invalid number pattern %q: malformed fraction", source)
	}
	if !strings.ContainsAny(integer+fraction, "#0") {
		return nil, fmt.Errorf("invalid number pattern %q: no digit placeholder", source)
	}
	if index := strings.LastIndexByte(integer, ','); index != -1 {
		ret.groupSize = len(integer) - index - 1
		if ret.groupSize == 0 {
			return nil, fmt.Errorf("invalid number pattern %q: empty grouping", source)
		}
	}
	ret.minInt = strings.Count(integer, "0")
	ret.minFrac = strings.Count(fraction, "0")
	ret.maxFrac = len(fraction)
	return ret, nil
}

func (p *Pattern) String() string {
	return p.source
}

// Parse parses the whole text as a number formatted with the pattern
func (p *Pattern) Parse(text string) (decimal.Decimal, bool) {
	if !strings.HasPrefix(text, p.prefix) || !strings.HasSuffix(text, p.suffix) || len(text) < len(p.prefix)+len(p.suffix) {
		return decimal.Zero, false
	}
	body := text[len(p.prefix) : len(text)-len(p.suffix)]
	sign := ""
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	}
	integer, fraction, hasPoint := strings.Cut(body, ".")
	if p.groupSize > 0 {
		integer = strings.ReplaceAll(integer, ",", "")
	}
	if integer == "" && fraction == "" {
		return decimal.Zero, false
	}
	if !isDigits(integer) || !isDigits(fraction) {
		return decimal.Zero, false
	}
	if integer == "" {
		integer = "0"
	}
	literal := sign + integer
	if hasPoint && fraction != "" {
		literal += "." + fraction
	}
	ret, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Zero, false
	}
	return ret, true
}

// Format formats value with the pattern, using half even rounding
func (p *Pattern) Format(value decimal.Decimal) string {
	negative := value.Sign() < 0
	fixed := value.Abs().RoundBank(int32(p.maxFrac)).StringFixed(int32(p.maxFrac))
	integer, fraction, _ := strings.Cut(fixed, ".")
	for len(fraction) > p.minFrac && strings.HasSuffix(fraction, "0") {
		fraction = fraction[:len(fraction)-1]
	}
	if integer == "0" && p.minInt == 0 && fraction != "" {
		integer = ""
	}
	for len(integer) < p.minInt {
		integer = "0" + integer
	}
	integer = group(integer, p.groupSize)

	builder := strings.Builder{}
	builder.WriteString(p.prefix)
	if negative && strings.Trim(integer+fraction, "0,") != "" {
		builder.WriteByte('-')
	}
	builder.WriteString(integer)
	if fraction != "" {
		builder.WriteByte('.')
		builder.WriteString(fraction)
	}
	builder.WriteString(p.suffix)
	return builder.String()
}

func group(digits string, size int) string {
	if size <= 0 || len(digits) <= size {
		return digits
	}
	builder := strings.Builder{}
	head := len(digits) % size
	if head > 0 {
		builder.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += size {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(digits[i : i+size])
	}
	return builder.String()
}

func isDigits(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
