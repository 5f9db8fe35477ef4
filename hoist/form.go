package hoist

import "github.com/hoist-lang/hoist/sexpr"

// DeclMarker is the head symbol that marks a declaration form
// (var name init).
const DeclMarker = "var"

type formKind uint8

const (
	formOrdinary formKind = iota
	formDecl
)

// classify decides whether a form is a declaration candidate: a list whose
// first item is the declaration marker. It is total and never fails; shape
// validation of candidates belongs to the engine, so that a malformed
// (var ...) form is rejected with a precise error instead of silently
// passing through as ordinary code.
func classify(n sexpr.Node) formKind {
	l, ok := n.(*sexpr.List)
	if !ok || len(l.Items) == 0 {
		return formOrdinary
	}
	if s, ok := l.Items[0].(*sexpr.Symbol); ok && s.Name == DeclMarker {
		return formDecl
	}
	return formOrdinary
}
