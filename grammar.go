package monkeynotes

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Token set for note documents. Ids are unsigned digit runs (Int); operation
// operands may additionally carry a leading minus (Neg). Spaces are elided
// between tokens; newlines are structural and matched explicitly, so they get
// their own token. Anything else, tabs and carriage returns included, is a
// lexer error.
var notesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\n`},
	{Name: "Neg", Pattern: `-\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:,*+=]`},
	{Name: "Whitespace", Pattern: ` +`},
})

// idNode is an unsigned digit run. The token text is kept verbatim and
// converted explicitly, so an oversized value is reported at its position
// instead of being silently truncated.
type idNode struct {
	Pos   lexer.Position
	Value string `@Int`
}

func (n *idNode) id() (int, error) {
	v, err := strconv.ParseInt(n.Value, 10, 0)
	if err != nil {
		return 0, &SyntaxError{Pos: n.Pos, Rule: "id", msg: fmt.Sprintf("id %s out of range", n.Value)}
	}
	return int(v), nil
}

func (n *idNode) worryLevel() (WorryLevel, error) {
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, &SyntaxError{Pos: n.Pos, Rule: "id", msg: fmt.Sprintf("id %s out of range", n.Value)}
	}
	return WorryLevel(v), nil
}

// numberNode is a signed operand.
type numberNode struct {
	Pos   lexer.Position
	Value string `@(Neg | Int)`
}

func (n *numberNode) worryLevel() (WorryLevel, error) {
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, &SyntaxError{Pos: n.Pos, Rule: "number", msg: fmt.Sprintf("operand %s out of range", n.Value)}
	}
	return WorryLevel(v), nil
}

// operationNode matches the fragment after "new = ". Power is listed first:
// it shares the "old *" prefix with multiplication and must win on
// "old * old" before a numeric operand is attempted.
type operationNode struct {
	Pow bool        `@("old" "*" "old") |`
	Add *numberNode `"old" "+" @@ |`
	Mul *numberNode `"old" "*" @@`
}

// testNode matches the three-line test block. The final line carries no EOL;
// the newline after a record belongs to the document separator.
type testNode struct {
	Divisor *idNode `"Test" ":" "divisible" "by" @@ EOL`
	IfTrue  *idNode `"If" "true" ":" "throw" "to" "monkey" @@ EOL`
	IfFalse *idNode `"If" "false" ":" "throw" "to" "monkey" @@`
}

// monkeyNode matches one full record: header, starting items (at least one),
// operation line, test block, in that order.
type monkeyNode struct {
	ID    *idNode        `"Monkey" @@ ":" EOL`
	Items []*idNode      `"Starting" "items" ":" @@ ( "," @@ )* EOL`
	Op    *operationNode `"Operation" ":" "new" "=" @@ EOL`
	Test  *testNode      `@@`
}

// documentNode requires exactly one newline between consecutive records.
// Trailing newlines after the last record are consumed; trailing anything
// else fails the parse.
type documentNode struct {
	Monkeys []*monkeyNode `@@ ( EOL @@ )* EOL*`
}

// relaxedDocumentNode additionally tolerates blank lines between records,
// the separator style of real puzzle inputs.
type relaxedDocumentNode struct {
	Monkeys []*monkeyNode `@@ ( EOL+ @@ )* EOL*`
}

var (
	strictParser  = participle.MustBuild[documentNode](grammarOptions()...)
	relaxedParser = participle.MustBuild[relaxedDocumentNode](grammarOptions()...)
)

func grammarOptions() []participle.Option {
	return []participle.Option{
		participle.Lexer(notesLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(4),
	}
}

func (n *operationNode) operation() (Operation, error) {
	switch {
	case n.Pow:
		return Operation{Kind: OpPow}, nil
	case n.Add != nil:
		operand, err := n.Add.worryLevel()
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpAdd, Operand: operand}, nil
	default:
		operand, err := n.Mul.worryLevel()
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpMul, Operand: operand}, nil
	}
}

func (n *testNode) test() (Test, error) {
	divisor, err := n.Divisor.worryLevel()
	if err != nil {
		return Test{}, err
	}
	ifTrue, err := n.IfTrue.id()
	if err != nil {
		return Test{}, err
	}
	ifFalse, err := n.IfFalse.id()
	if err != nil {
		return Test{}, err
	}

	return Test{Divisor: divisor, IfTrue: ifTrue, IfFalse: ifFalse}, nil
}

func (n *monkeyNode) monkey() (Monkey, error) {
	id, err := n.ID.id()
	if err != nil {
		return Monkey{}, err
	}

	items := make([]WorryLevel, len(n.Items))
	for i, item := range n.Items {
		v, err := item.worryLevel()
		if err != nil {
			return Monkey{}, err
		}
		items[i] = v
	}

	op, err := n.Op.operation()
	if err != nil {
		return Monkey{}, err
	}
	test, err := n.Test.test()
	if err != nil {
		return Monkey{}, err
	}

	return Monkey{ID: id, Items: items, Op: op, Test: test}, nil
}

func buildDocument(nodes []*monkeyNode) (*Document, error) {
	monkeys := make([]Monkey, len(nodes))
	for i, n := range nodes {
		m, err := n.monkey()
		if err != nil {
			return nil, err
		}
		monkeys[i] = m
	}
	return &Document{Monkeys: monkeys}, nil
}
