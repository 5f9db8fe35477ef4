// Package interp evaluates the host forms the hoisting transform emits:
// scope, set!, block and return-from, plus enough ordinary forms to write
// programs against. Values are Go natives: nil (the undefined placeholder),
// int64, float64, string, []any and Builtin functions. Quoted forms
// evaluate to their sexpr.Node.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hoist-lang/hoist/sexpr"
)

// A flow is how one form finished evaluating: normally with a value, or
// unwinding toward an enclosing (block label ...) form. Early exits are
// plain return values, not panics; every evaluation step passes them
// upward until a block with a matching label stops them.
type flow struct {
	val   any
	label string // non-empty while unwinding
}

// Builtin is a host function callable from evaluated code.
type Builtin func(args []any) (any, error)

type Interp struct {
	global *Env
}

func New() *Interp {
	i := &Interp{global: NewEnv(nil)}
	i.global.Define("nil", nil)
	i.global.Define("true", true)
	i.global.Define("false", false)
	for name, fn := range builtins {
		i.global.Define(name, Builtin(fn))
	}
	return i
}

// Run evaluates forms in order in a fresh frame under the globals and
// returns the value of the last one, or nil for an empty program.
func (i *Interp) Run(forms []sexpr.Node) (any, error) {
	env := NewEnv(i.global)
	var last any
	for _, n := range forms {
		f, err := i.eval(env, n)
		if err != nil {
			return nil, err
		}
		if f.label != "" {
			return nil, fmt.Errorf("return-from %v: no enclosing block", f.label)
		}
		last = f.val
	}
	return last, nil
}

func (i *Interp) eval(env *Env, n sexpr.Node) (flow, error) {
	switch n := n.(type) {
	case *sexpr.Symbol:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return flow{}, fmt.Errorf("unbound variable %v", n.Name)
		}
		return flow{val: v}, nil
	case *sexpr.Number:
		v, err := parseNumber(n.Raw)
		return flow{val: v}, err
	case *sexpr.String:
		v, err := strconv.Unquote(n.Raw)
		if err != nil {
			return flow{}, fmt.Errorf("bad string literal %v", n.Raw)
		}
		return flow{val: v}, nil
	case *sexpr.List:
		return i.evalList(env, n)
	}
	panic("unreachable")
}

func (i *Interp) evalList(env *Env, l *sexpr.List) (flow, error) {
	if len(l.Items) == 0 {
		return flow{}, fmt.Errorf("cannot evaluate ()")
	}
	if s, ok := l.Items[0].(*sexpr.Symbol); ok {
		switch s.Name {
		case "quote":
			if len(l.Items) != 2 {
				return flow{}, fmt.Errorf("quote: want one form")
			}
			return flow{val: l.Items[1]}, nil
		case "if":
			return i.evalIf(env, l)
		case "scope":
			return i.evalScope(env, l)
		case "set!":
			return i.evalSet(env, l)
		case "block":
			return i.evalBlock(env, l)
		case "return-from":
			return i.evalReturnFrom(env, l)
		}
	}
	head, err := i.eval(env, l.Items[0])
	if err != nil || head.label != "" {
		return head, err
	}
	fn, ok := head.val.(Builtin)
	if !ok {
		return flow{}, fmt.Errorf("%v is not a function", sexpr.Format(l.Items[0]))
	}
	args := make([]any, 0, len(l.Items)-1)
	for _, n := range l.Items[1:] {
		f, err := i.eval(env, n)
		if err != nil || f.label != "" {
			return f, err
		}
		args = append(args, f.val)
	}
	v, err := fn(args)
	if err != nil {
		return flow{}, fmt.Errorf("%v: %w", sexpr.Format(l.Items[0]), err)
	}
	return flow{val: v}, nil
}

// evalScope binds every listed name to the nil placeholder in a fresh
// frame, then evaluates the body in order. (scope (name...) body...)
func (i *Interp) evalScope(env *Env, l *sexpr.List) (flow, error) {
	if len(l.Items) < 2 {
		return flow{}, fmt.Errorf("scope: want (scope (name...) body...)")
	}
	names, ok := l.Items[1].(*sexpr.List)
	if !ok {
		return flow{}, fmt.Errorf("scope: want a list of names, got %v", sexpr.Format(l.Items[1]))
	}
	inner := NewEnv(env)
	for _, n := range names.Items {
		s, ok := n.(*sexpr.Symbol)
		if !ok {
			return flow{}, fmt.Errorf("scope: bad name %v", sexpr.Format(n))
		}
		inner.Define(s.Name, nil)
	}
	var last any
	for _, n := range l.Items[2:] {
		f, err := i.eval(inner, n)
		if err != nil || f.label != "" {
			return f, err
		}
		last = f.val
	}
	return flow{val: last}, nil
}

// evalSet assigns to the nearest binding and yields the assigned value.
func (i *Interp) evalSet(env *Env, l *sexpr.List) (flow, error) {
	if len(l.Items) != 3 {
		return flow{}, fmt.Errorf("set!: want (set! name expr)")
	}
	name, ok := l.Items[1].(*sexpr.Symbol)
	if !ok {
		return flow{}, fmt.Errorf("set!: bad name %v", sexpr.Format(l.Items[1]))
	}
	f, err := i.eval(env, l.Items[2])
	if err != nil || f.label != "" {
		return f, err
	}
	if err := env.Set(name.Name, f.val); err != nil {
		return flow{}, err
	}
	return flow{val: f.val}, nil
}

// evalBlock runs its body and intercepts early exits carrying its own
// label; exits to other labels keep unwinding. (block label body...)
func (i *Interp) evalBlock(env *Env, l *sexpr.List) (flow, error) {
	if len(l.Items) < 2 {
		return flow{}, fmt.Errorf("block: want (block label body...)")
	}
	label, ok := l.Items[1].(*sexpr.Symbol)
	if !ok {
		return flow{}, fmt.Errorf("block: bad label %v", sexpr.Format(l.Items[1]))
	}
	var last any
	for _, n := range l.Items[2:] {
		f, err := i.eval(env, n)
		if err != nil {
			return flow{}, err
		}
		if f.label != "" {
			if f.label == label.Name {
				return flow{val: f.val}, nil
			}
			return f, nil
		}
		last = f.val
	}
	return flow{val: last}, nil
}

// evalReturnFrom starts an unwind toward the named block.
// (return-from label expr)
func (i *Interp) evalReturnFrom(env *Env, l *sexpr.List) (flow, error) {
	if len(l.Items) != 3 {
		return flow{}, fmt.Errorf("return-from: want (return-from label expr)")
	}
	label, ok := l.Items[1].(*sexpr.Symbol)
	if !ok {
		return flow{}, fmt.Errorf("return-from: bad label %v", sexpr.Format(l.Items[1]))
	}
	f, err := i.eval(env, l.Items[2])
	if err != nil || f.label != "" {
		return f, err
	}
	return flow{val: f.val, label: label.Name}, nil
}

func (i *Interp) evalIf(env *Env, l *sexpr.List) (flow, error) {
	if len(l.Items) != 3 && len(l.Items) != 4 {
		return flow{}, fmt.Errorf("if: want (if cond then else?)")
	}
	cond, err := i.eval(env, l.Items[1])
	if err != nil || cond.label != "" {
		return cond, err
	}
	if truthy(cond.val) {
		return i.eval(env, l.Items[2])
	}
	if len(l.Items) == 4 {
		return i.eval(env, l.Items[3])
	}
	return flow{}, nil
}

// truthy: nil and false are false, everything else is true.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return !ok || b
}

func parseNumber(raw string) (any, error) {
	if strings.ContainsAny(raw, ".eE") {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number literal %v", raw)
		}
		return v, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number literal %v", raw)
	}
	return v, nil
}
