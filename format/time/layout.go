package time

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/coerce/internal/lru"
	"github.com/viant/parsly"
)

var layouts = lru.New[string, *Layout](512)

// goLayoutTokens lists chunks that time.Parse would treat as layout elements inside literal text
var goLayoutTokens = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07", "_2"}

// Layout represents a date pattern compiled to Go time layout
type Layout struct {
	Pattern string
	Value   string
}

// Parse parses value with the layout, values without zone information are interpreted in loc
func (l *Layout) Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(l.Value, value, loc)
}

// Format formats ts with the layout
func (l *Layout) Format(ts time.Time) string {
	return ts.Format(l.Value)
}

func (l *Layout) String() string {
	return l.Pattern
}

// GoLayout wraps an already Go native layout
func GoLayout(layout string) *Layout {
	return &Layout{Pattern: layout, Value: layout}
}

// Compile compiles a date pattern like yyyy/MM/dd HH:mm:ss.SSSZ into Go time layout
func Compile(pattern string) (*Layout, error) {
	return layouts.Load(pattern, compile)
}

// DateFormatToTimeLayout converts date pattern to Go time layout, it returns empty string for invalid pattern
func DateFormatToTimeLayout(pattern string) string {
	layout, err := Compile(pattern)
	if err != nil {
		return ""
	}
	return layout.Value
}

func compile(pattern string) (*Layout, error) {
	if pattern == "" {
		return nil, fmt.Errorf("date pattern was empty")
	}
	builder := strings.Builder{}
	cursor := parsly.NewCursor("", []byte(pattern), 0)
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAny(letterRunMatcher, quotedMatcher, literalMatcher)
		switch match.Code {
		case letterRunToken:
			run := match.Text(cursor)
			fragment, err := layoutElement(run[0], len(run), builder.String())
			if err != nil {
				return nil, fmt.Errorf("invalid date pattern %q: %w", pattern, err)
			}
			builder.WriteString(fragment)
		case quotedToken:
			text := match.Text(cursor)
			text = text[1 : len(text)-1]
			if text == "" {
				text = "'"
			}
			text = strings.ReplaceAll(text, "''", "'")
			if err := checkLiteral(text); err != nil {
				return nil, fmt.Errorf("invalid date pattern %q: %w", pattern, err)
			}
			builder.WriteString(text)
		case literalToken:
			text := match.Text(cursor)
			if err := checkLiteral(text); err != nil {
				return nil, fmt.Errorf("invalid date pattern %q: %w", pattern, err)
			}
			builder.WriteString(text)
		default:
			return nil, fmt.Errorf("invalid date pattern %q: unterminated quote at %d", pattern, cursor.Pos)
		}
	}
	return &Layout{Pattern: pattern, Value: builder.String()}, nil
}

func layoutElement(letter byte, count int, preceding string) (string, error) {
	switch letter {
	case 'y', 'u':
		if count == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M', 'L':
		switch count {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		default:
			return "January", nil
		}
	case 'd':
		return pick(letter, count, "2", "02")
	case 'H':
		return pick(letter, count, "15", "15")
	case 'h':
		return pick(letter, count, "3", "03")
	case 'm':
		return pick(letter, count, "4", "04")
	case 's':
		return pick(letter, count, "5", "05")
	case 'S':
		if !strings.HasSuffix(preceding, ".") && !strings.HasSuffix(preceding, ",") {
			return "", fmt.Errorf("fraction S must follow '.' or ','")
		}
		return strings.Repeat("0", count), nil
	case 'a':
		return "PM", nil
	case 'E':
		if count >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'Z':
		if count >= 5 {
			return "-07:00", nil
		}
		return "-0700", nil
	case 'X':
		return offset(letter, count, "Z07", "Z0700", "Z07:00")
	case 'x':
		return offset(letter, count, "-07", "-0700", "-07:00")
	case 'z':
		return "MST", nil
	}
	return "", fmt.Errorf("unsupported pattern letter %q", letter)
}

func pick(letter byte, count int, short, long string) (string, error) {
	switch count {
	case 1:
		return short, nil
	case 2:
		return long, nil
	}
	return "", fmt.Errorf("unsupported pattern %s", strings.Repeat(string(letter), count))
}

func offset(letter byte, count int, layouts ...string) (string, error) {
	if count > len(layouts) {
		return "", fmt.Errorf("unsupported pattern %s", strings.Repeat(string(letter), count))
	}
	return layouts[count-1], nil
}

func checkLiteral(text string) error {
	if strings.ContainsAny(text, "0123456789") {
		return fmt.Errorf("literal %q contains digits", text)
	}
	for _, token := range goLayoutTokens {
		if strings.Contains(text, token) {
			return fmt.Errorf("literal %q collides with layout element %s", text, token)
		}
	}
	return nil
}
