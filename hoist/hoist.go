// Package hoist rewrites a body that declares variables at their point of
// first use into a single block that binds every declared name up front.
//
// A declaration (var name init) anywhere in the body becomes an assignment
// (set! name init) at the same position, and every declared name is
// collected, in first-occurrence order, into the binding list of the
// assembled output. Ordinary forms pass through untouched, in their
// original order. An initializer that reads a name declared later in the
// body sees that name's nil placeholder, not its later value.
package hoist

import (
	"fmt"

	"github.com/mateusz834/tgoast/token"

	"github.com/hoist-lang/hoist/sexpr"
)

// MalformedDeclError reports a (var ...) form that does not carry exactly
// one name and one initializer.
type MalformedDeclError struct {
	Pos  token.Position
	Form string
}

func (e *MalformedDeclError) Error() string {
	return fmt.Sprintf("%v: malformed declaration %v, want (%v name init)", e.Pos, e.Form, DeclMarker)
}

// DuplicateDeclError reports a name declared twice in one body. Pos is the
// position of the repeated declaration, not of the one already accepted.
type DuplicateDeclError struct {
	Pos  token.Position
	Name string
}

func (e *DuplicateDeclError) Error() string {
	return fmt.Sprintf("%v: duplicate declaration of %v", e.Pos, e.Name)
}

// Result is the outcome of one hoisting pass: the declared names in
// first-occurrence order and the rewritten body, which has the same length
// and relative order as the input.
type Result struct {
	Names []*sexpr.Symbol
	Body  []sexpr.Node
}

// Hoist scans forms once, left to right. Declaration forms are validated,
// their names accumulated, and each is replaced in place by the equivalent
// assignment; everything else is carried through unchanged. The input is
// never mutated. Failure is fatal: no partial Result is returned.
func Hoist(fs *token.FileSet, forms []sexpr.Node) (*Result, error) {
	r := &Result{Body: make([]sexpr.Node, 0, len(forms))}
	seen := make(map[string]bool)
	for _, n := range forms {
		if classify(n) == formOrdinary {
			r.Body = append(r.Body, n)
			continue
		}
		l := n.(*sexpr.List)
		name, err := declName(fs, l)
		if err != nil {
			return nil, err
		}
		if seen[name.Name] {
			return nil, &DuplicateDeclError{
				Pos:  fs.Position(name.Pos()),
				Name: name.Name,
			}
		}
		seen[name.Name] = true
		r.Names = append(r.Names, name)
		r.Body = append(r.Body, &sexpr.List{
			Lparen: l.Lparen,
			Items:  []sexpr.Node{sexpr.Sym("set!"), name, l.Items[2]},
			Rparen: l.Rparen,
		})
	}
	return r, nil
}

// declName checks the shape of a declaration candidate and returns the
// declared name.
func declName(fs *token.FileSet, l *sexpr.List) (*sexpr.Symbol, error) {
	if len(l.Items) != 3 {
		return nil, &MalformedDeclError{
			Pos:  fs.Position(l.Pos()),
			Form: sexpr.Format(l),
		}
	}
	name, ok := l.Items[1].(*sexpr.Symbol)
	if !ok {
		return nil, &MalformedDeclError{
			Pos:  fs.Position(l.Items[1].Pos()),
			Form: sexpr.Format(l),
		}
	}
	return name, nil
}
