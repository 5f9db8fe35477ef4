package sexpr

import (
	"github.com/mateusz834/tgoast/token"
)

// Node is one form of the host surface syntax: a symbol, a literal or a
// parenthesized list. Forms built by the reader carry source positions;
// synthesized forms carry token.NoPos.
type Node interface {
	Pos() token.Pos // position of the first character of the form
	End() token.Pos // position of the first character after the form
	node()
}

type Symbol struct {
	NamePos token.Pos
	Name    string
}

// Number keeps the literal text unparsed; evaluation decides int vs float.
type Number struct {
	ValuePos token.Pos
	Raw      string
}

// String keeps the literal text including the surrounding quotes.
type String struct {
	ValuePos token.Pos
	Raw      string
}

type List struct {
	Lparen token.Pos
	Items  []Node
	Rparen token.Pos
}

func (s *Symbol) Pos() token.Pos { return s.NamePos }
func (s *Symbol) End() token.Pos { return s.NamePos + token.Pos(len(s.Name)) }
func (n *Number) Pos() token.Pos { return n.ValuePos }
func (n *Number) End() token.Pos { return n.ValuePos + token.Pos(len(n.Raw)) }
func (s *String) Pos() token.Pos { return s.ValuePos }
func (s *String) End() token.Pos { return s.ValuePos + token.Pos(len(s.Raw)) }
func (l *List) Pos() token.Pos   { return l.Lparen }
func (l *List) End() token.Pos   { return l.Rparen + 1 }

func (*Symbol) node() {}
func (*Number) node() {}
func (*String) node() {}
func (*List) node()   {}

// Sym returns a synthesized symbol with no position. The reader never
// produces these; they are for forms built programmatically.
func Sym(name string) *Symbol {
	return &Symbol{NamePos: token.NoPos, Name: name}
}

// NewList returns a synthesized list with no positions.
func NewList(items ...Node) *List {
	return &List{Items: items}
}
