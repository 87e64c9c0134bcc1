// Package monkeynotes parses "Monkey in the Middle" puzzle notes: a list of
// monkey records, each declaring an id, starting items, an arithmetic
// operation, and a divisibility test with two throw targets. The package only
// recognizes and decomposes the text; running the simulation is the caller's
// business.
package monkeynotes

import (
	"fmt"
	"io"
	"strings"
)

// Parser provides configurable note parsing. The zero configuration follows
// the grammar literally: records separated by exactly one newline, declared
// ids taken as written.
type Parser struct {
	blankLineSeparators bool
	sequentialIDs       bool
}

// NewParser creates a new Parser with default configuration.
func NewParser() *Parser {
	return &Parser{}
}

// WithBlankLineSeparators accepts one or more blank lines between monkey
// records, the separator style of real puzzle inputs.
func (p *Parser) WithBlankLineSeparators() *Parser {
	p.blankLineSeparators = true
	return p
}

// WithSequentialIDCheck rejects documents whose declared ids do not equal
// their record positions, so id N can safely be addressed as Monkeys[N].
func (p *Parser) WithSequentialIDCheck() *Parser {
	p.sequentialIDs = true
	return p
}

// ParseDocument parses a note document from an io.Reader. On any structural
// violation it returns a *SyntaxError and no document.
func (p *Parser) ParseDocument(r io.Reader) (*Document, error) {
	var nodes []*monkeyNode

	if p.blankLineSeparators {
		root, err := relaxedParser.Parse("", r)
		if err != nil {
			return nil, syntaxError(err)
		}
		nodes = root.Monkeys
	} else {
		root, err := strictParser.Parse("", r)
		if err != nil {
			return nil, syntaxError(err)
		}
		nodes = root.Monkeys
	}

	doc, err := buildDocument(nodes)
	if err != nil {
		return nil, err
	}

	if p.sequentialIDs {
		for i, m := range doc.Monkeys {
			if m.ID != i {
				return nil, fmt.Errorf("invalid monkey id: expected %d, got %d", i, m.ID)
			}
		}
	}

	return doc, nil
}

// Parse parses a note document from a string using the default configuration.
func Parse(text string) (*Document, error) {
	return NewParser().ParseDocument(strings.NewReader(text))
}
