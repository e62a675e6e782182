package time

import (
	"github.com/viant/parsly"
)

const (
	letterRunToken = iota + 1
	quotedToken
	literalToken
)

var (
	letterRunMatcher = parsly.NewToken(letterRunToken, "letters", &letterRun{})
	quotedMatcher    = parsly.NewToken(quotedToken, "' .... '", &quoted{})
	literalMatcher   = parsly.NewToken(literalToken, "literal", &literal{})
)

// letterRun matches a run of the same ASCII letter, i.e. yyyy or MM
type letterRun struct{}

func (l *letterRun) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	if len(input) == 0 || !isLetter(input[0]) {
		return 0
	}
	matched := 1
	for matched < len(input) && input[matched] == input[0] {
		matched++
	}
	return matched
}

// quoted matches 'text' where '' stands for a single quote, a bare '' matches as well
type quoted struct{}

func (q *quoted) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	if len(input) < 2 || input[0] != '\'' {
		return 0
	}
	for i := 1; i < len(input); i++ {
		if input[i] != '\'' {
			continue
		}
		if i+1 < len(input) && input[i+1] == '\'' && i > 1 {
			i++
			continue
		}
		return i + 1
	}
	return 0
}

// literal matches anything that is neither a letter nor a quote
type literal struct{}

func (l *literal) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	matched := 0
	for matched < len(input) && !isLetter(input[matched]) && input[matched] != '\'' {
		matched++
	}
	return matched
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
