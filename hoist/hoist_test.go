package hoist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mateusz834/tgoast/token"

	"github.com/hoist-lang/hoist/sexpr"
)

func parse(t *testing.T, src string) (*token.FileSet, []sexpr.Node) {
	t.Helper()
	fs := token.NewFileSet()
	forms, err := sexpr.Read(fs, "test.sx", src)
	if err != nil {
		t.Fatal(err)
	}
	return fs, forms
}

func names(r *Result) []string {
	var out []string
	for _, s := range r.Names {
		out = append(out, s.Name)
	}
	return out
}

func TestClassify(t *testing.T) {
	cases := []struct {
		src  string
		want formKind
	}{
		{"(var a 1)", formDecl},
		{"(var)", formDecl}, // malformed, but still a candidate
		{"(var a 1 2)", formDecl},
		{"(vars a 1)", formOrdinary},
		{"(f var)", formOrdinary},
		{"((var) a 1)", formOrdinary},
		{"()", formOrdinary},
		{"var", formOrdinary},
		{"42", formOrdinary},
		{`"var"`, formOrdinary},
	}
	for _, tt := range cases {
		_, forms := parse(t, tt.src)
		if got := classify(forms[0]); got != tt.want {
			t.Errorf("classify(%v) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestHoistOrdinaryOnly(t *testing.T) {
	// Nested (var ...) forms are opaque: only top-level forms are
	// classified.
	fs, forms := parse(t, `(doThis) x 42 "s" (when p (var a 1))`)
	r, err := Hoist(fs, forms)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Names) != 0 {
		t.Errorf("Names = %v, want none", names(r))
	}
	if diff := cmp.Diff(forms, r.Body); diff != "" {
		t.Errorf("Body differs from input (-want +got):\n%v", diff)
	}
}

func TestHoistExample(t *testing.T) {
	fs, forms := parse(t, `
(doThis)
(var a b)
(doThat b)
(var c a)
(doOther c)
`)
	r, err := Hoist(fs, forms)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, names(r)); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%v", diff)
	}
	if len(r.Body) != len(forms) {
		t.Fatalf("len(Body) = %d, want %d", len(r.Body), len(forms))
	}
	const wantBody = `(doThis)
(set! a b)
(doThat b)
(set! c a)
(doOther c)
`
	if got := sexpr.FormatSeq(r.Body); got != wantBody {
		t.Errorf("Body:\n%vwant:\n%v", got, wantBody)
	}

	const wantBlock = "(scope (a c) (doThis) (set! a b) (doThat b) (set! c a) (doOther c))"
	if got := sexpr.Format(Assemble(r)); got != wantBlock {
		t.Errorf("Assemble = %v, want %v", got, wantBlock)
	}
}

func TestHoistRewritesInPlace(t *testing.T) {
	fs, forms := parse(t, `(var a 1) (mid) (var b 2)`)
	r, err := Hoist(fs, forms)
	if err != nil {
		t.Fatal(err)
	}
	// the replacement keeps the declaration's source positions
	for _, i := range []int{0, 2} {
		decl := forms[i].(*sexpr.List)
		asg := r.Body[i].(*sexpr.List)
		if asg.Lparen != decl.Lparen || asg.Rparen != decl.Rparen {
			t.Errorf("Body[%d] positions %v-%v, want %v-%v", i, asg.Lparen, asg.Rparen, decl.Lparen, decl.Rparen)
		}
	}
	if r.Body[1] != forms[1] {
		t.Errorf("Body[1] is not the original ordinary form")
	}
}

func TestHoistFirstOccurrenceOrder(t *testing.T) {
	fs, forms := parse(t, `(var z 1) (f) (var a 2) (g) (var m 3)`)
	r, err := Hoist(fs, forms)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, names(r)); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%v", diff)
	}
}

func TestHoistDuplicate(t *testing.T) {
	fs, forms := parse(t, `
(var a 1)
(var b 2)
(var a 3)
`)
	r, err := Hoist(fs, forms)
	if r != nil {
		t.Errorf("Result = %v, want nil", r)
	}
	var dup *DuplicateDeclError
	if !errors.As(err, &dup) {
		t.Fatalf("error is %T (%v), want *DuplicateDeclError", err, err)
	}
	if dup.Name != "a" {
		t.Errorf("Name = %v, want a", dup.Name)
	}
	// reported against the second occurrence, line 4
	if dup.Pos.Line != 4 || dup.Pos.Column != 6 {
		t.Errorf("Pos = %v, want test.sx:4:6", dup.Pos)
	}
}

func TestHoistMalformed(t *testing.T) {
	cases := []struct {
		src      string
		wantForm string
	}{
		{"(var)", "(var)"},
		{"(var a)", "(var a)"},
		{"(var a 1 2)", "(var a 1 2)"},
		{"(var 1 2)", "(var 1 2)"},
		{"(var (a) 1)", "(var (a) 1)"},
		{`(var "a" 1)`, `(var "a" 1)`},
	}
	for _, tt := range cases {
		fs, forms := parse(t, tt.src)
		r, err := Hoist(fs, forms)
		if r != nil {
			t.Errorf("Hoist(%v): Result = %v, want nil", tt.src, r)
		}
		var mal *MalformedDeclError
		if !errors.As(err, &mal) {
			t.Errorf("Hoist(%v): error is %T (%v), want *MalformedDeclError", tt.src, err, err)
			continue
		}
		if mal.Form != tt.wantForm {
			t.Errorf("Hoist(%v): Form = %v, want %v", tt.src, mal.Form, tt.wantForm)
		}
	}
}

func TestHoistDoesNotMutateInput(t *testing.T) {
	fs, forms := parse(t, `(var a 1) (f a)`)
	before := sexpr.FormatSeq(forms)
	if _, err := Hoist(fs, forms); err != nil {
		t.Fatal(err)
	}
	if after := sexpr.FormatSeq(forms); after != before {
		t.Errorf("input mutated:\nbefore: %vafter: %v", before, after)
	}
}

func TestAssembleEmpty(t *testing.T) {
	fs, forms := parse(t, "")
	r, err := Hoist(fs, forms)
	if err != nil {
		t.Fatal(err)
	}
	if got := sexpr.Format(Assemble(r)); got != "(scope ())" {
		t.Errorf("Assemble = %v, want (scope ())", got)
	}
}

func TestWrapNamed(t *testing.T) {
	fs, forms := parse(t, `(var a 1) (f a)`)
	r, err := Hoist(fs, forms)
	if err != nil {
		t.Fatal(err)
	}
	wrapped := WrapNamed(sexpr.Sym("early"), r)
	const want = "(block early (scope (a) (set! a 1) (f a)))"
	if got := sexpr.Format(wrapped); got != want {
		t.Errorf("WrapNamed = %v, want %v", got, want)
	}
	// identical to the unwrapped block, except for the enclosing label
	if diff := cmp.Diff(Assemble(r), wrapped.Items[2]); diff != "" {
		t.Errorf("wrapped body differs from Assemble (-want +got):\n%v", diff)
	}
}
