package conv

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies conversion failures
type Kind int

const (
	KindUnsupportedSource Kind = iota + 1
	KindMultiValue
	KindParse
	KindInstantiation
	KindUnresolvedType
)

var (
	ErrUnsupportedSource = errors.New("unsupported source type")
	ErrMultiValue        = errors.New("multiple values for a single value target")
	ErrParse             = errors.New("unparsable text")
	ErrInstantiation     = errors.New("container instantiation failed")
	ErrUnresolvedType    = errors.New("unresolved target type")
)

func (k Kind) sentinel() error {
	switch k {
	case KindUnsupportedSource:
		return ErrUnsupportedSource
	case KindMultiValue:
		return ErrMultiValue
	case KindParse:
		return ErrParse
	case KindInstantiation:
		return ErrInstantiation
	case KindUnresolvedType:
		return ErrUnresolvedType
	}
	return nil
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error represents a conversion failure
type Error struct {
	Kind   Kind
	Target string
	Value  any
	// Patterns lists patterns attempted by a failed parse
	Patterns []string
	Err      error
}

// NewError creates a conversion error
func NewError(kind Kind, target string, value any, err error) *Error {
	return &Error{Kind: kind, Target: target, Value: value, Err: err}
}

func (e *Error) Error() string {
	builder := strings.Builder{}
	if e.Kind == KindUnresolvedType {
		builder.WriteString("no converter registered for ")
		builder.WriteString(e.Target)
	} else {
		builder.WriteString("can't convert ")
		builder.WriteString(describe(e.Value))
		builder.WriteString(" to ")
		builder.WriteString(e.Target)
		builder.WriteString(": ")
		builder.WriteString(e.Kind.String())
	}
	if len(e.Patterns) > 0 {
		builder.WriteString(", patterns [")
		builder.WriteString(strings.Join(e.Patterns, ", "))
		builder.WriteString("]")
	}
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

// Is matches kind sentinel errors
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns kind of the first conversion error in err chain
func KindOf(err error) (Kind, bool) {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.Kind, true
	}
	return 0, false
}

func describe(value any) string {
	switch actual := value.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", actual)
	}
	return fmt.Sprintf("%v", value)
}
