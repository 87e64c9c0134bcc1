// Package monkeynotes defines the core data structures for parsed monkey notes.
package monkeynotes

import (
	"fmt"
	"strconv"
	"strings"
)

// WorryLevel is the integer type for item values, operation operands, and
// test divisors.
type WorryLevel int64

// OpKind selects the arithmetic shape of an Operation.
type OpKind int

const (
	// OpAdd adds the operand to the running value: new = old + n.
	OpAdd OpKind = iota
	// OpMul multiplies the running value by the operand: new = old * n.
	OpMul
	// OpPow squares the running value: new = old * old. The operand is unused.
	OpPow
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpPow:
		return "pow"
	default:
		return "unknown"
	}
}

// Operation is the arithmetic transformation declared on a monkey's
// "Operation:" line.
type Operation struct {
	Kind    OpKind
	Operand WorryLevel
}

// String renders the operation as it appears after "new = " in note text.
func (o Operation) String() string {
	switch o.Kind {
	case OpPow:
		return "old * old"
	case OpAdd:
		return fmt.Sprintf("old + %d", o.Operand)
	default:
		return fmt.Sprintf("old * %d", o.Operand)
	}
}

// Test is the divisibility check routing an item to one of two monkeys.
type Test struct {
	Divisor WorryLevel
	IfTrue  int
	IfFalse int
}

func (t Test) String() string {
	return fmt.Sprintf("Test: divisible by %d\nIf true: throw to monkey %d\nIf false: throw to monkey %d",
		t.Divisor, t.IfTrue, t.IfFalse)
}

// Monkey is one parsed record: declared id, starting items in written order,
// the operation, and the routing test.
//
// ID is the number written in the "Monkey N:" header. It is not guaranteed to
// equal the record's position in the Document; throw targets are positional.
type Monkey struct {
	ID    int
	Items []WorryLevel
	Op    Operation
	Test  Test
}

func (m Monkey) String() string {
	items := make([]string, len(m.Items))
	for i, item := range m.Items {
		items[i] = strconv.FormatInt(int64(item), 10)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Monkey %d:\n", m.ID)
	fmt.Fprintf(&sb, "Starting items: %s\n", strings.Join(items, ", "))
	fmt.Fprintf(&sb, "Operation: new = %s\n", m.Op)
	sb.WriteString(m.Test.String())
	return sb.String()
}

// Document is the full ordered collection of monkey records from one input.
// Order is significant: a record's position is its index for throw targets.
type Document struct {
	Monkeys []Monkey
}

// String renders the document in canonical form: records separated by a
// single newline, no blank lines. The output parses back to an equal Document.
func (d *Document) String() string {
	records := make([]string, len(d.Monkeys))
	for i, m := range d.Monkeys {
		records[i] = m.String()
	}
	return strings.Join(records, "\n")
}
