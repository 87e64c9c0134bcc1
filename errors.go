package monkeynotes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SyntaxError is the single error family for malformed note text. It carries
// the failure position, the grammar rule being matched, and the terminals
// expected there. Got is empty when input ended early; Expected is empty when
// a complete document was followed by trailing input.
type SyntaxError struct {
	Pos      lexer.Position
	Rule     string
	Expected string
	Got      string

	msg string
}

func (e *SyntaxError) Error() string {
	pos := fmt.Sprintf("line %d, column %d", e.Pos.Line, e.Pos.Column)

	switch {
	case e.msg != "":
		return fmt.Sprintf("%s: %s", pos, e.msg)
	case e.Got == "":
		return fmt.Sprintf("%s: unexpected end of input in %s (expected %s)", pos, e.Rule, e.Expected)
	case e.Expected == "":
		return fmt.Sprintf("%s: unexpected trailing input %q", pos, e.Got)
	default:
		return fmt.Sprintf("%s: unexpected %q in %s (expected %s)", pos, e.Got, e.Rule, e.Expected)
	}
}

// syntaxError converts participle parse and lex failures into SyntaxError.
// Anything else (reader failures) passes through untouched.
func syntaxError(err error) error {
	if err == nil {
		return nil
	}

	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		// participle renders the expected terminals only into Message();
		// the public Expect field is left unpopulated.
		expected := expectedIn(unexpected.Message())
		return &SyntaxError{
			Pos:      unexpected.Position(),
			Rule:     ruleAt(expected),
			Expected: expected,
			Got:      unexpected.Unexpected.Value,
		}
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{
			Pos:  perr.Position(),
			Rule: "document",
			msg:  perr.Message(),
		}
	}

	return err
}

// expectedIn extracts the expected-terminal list from a participle message of
// the form `unexpected token "x" (expected ...)`. Empty when the failure
// carries no expectation, i.e. trailing input after a complete document.
func expectedIn(message string) string {
	const marker = "(expected "

	i := strings.LastIndex(message, marker)
	if i < 0 || !strings.HasSuffix(message, ")") {
		return ""
	}
	return message[i+len(marker) : len(message)-1]
}

// ruleAt maps an expected-terminal string onto the grammar rule that owns it.
// Best effort: the match is keyed on the literals unique to each rule.
func ruleAt(expected string) string {
	switch {
	case expected == "":
		return "document"
	case strings.Contains(expected, "Monkey"):
		return "monkey"
	case strings.Contains(expected, "Starting") || strings.Contains(expected, "items"):
		return "items"
	case strings.Contains(expected, "old") || strings.Contains(expected, "new"):
		return "operation"
	case strings.Contains(expected, "Test") || strings.Contains(expected, "divisible") ||
		strings.Contains(expected, "If") || strings.Contains(expected, "throw") ||
		strings.Contains(expected, "monkey"):
		return "test"
	case strings.Contains(expected, "<neg>") || strings.Contains(expected, "Neg"):
		return "number"
	case strings.Contains(expected, "<int>") || strings.Contains(expected, "Int"):
		return "id"
	case strings.Contains(expected, "<eol>") || strings.Contains(expected, "EOL"):
		return "monkey"
	default:
		return "document"
	}
}
