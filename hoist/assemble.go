package hoist

import "github.com/hoist-lang/hoist/sexpr"

// Assemble wraps a hoisting result into one (scope (name...) body...) form:
// every hoisted name is bound to the nil placeholder in a fresh lexical
// scope, then the body runs in order. The scope's value is the value of the
// last body form.
func Assemble(r *Result) *sexpr.List {
	names := make([]sexpr.Node, len(r.Names))
	for i, s := range r.Names {
		names[i] = s
	}
	items := make([]sexpr.Node, 0, len(r.Body)+2)
	items = append(items, sexpr.Sym("scope"), sexpr.NewList(names...))
	items = append(items, r.Body...)
	return sexpr.NewList(items...)
}

// WrapNamed attaches label around the assembled block:
// (block label (scope ...)). Code anywhere inside the body may leave the
// block early with (return-from label value); the exit mechanism itself is
// the host evaluator's, not ours.
func WrapNamed(label *sexpr.Symbol, r *Result) *sexpr.List {
	return sexpr.NewList(sexpr.Sym("block"), label, Assemble(r))
}
