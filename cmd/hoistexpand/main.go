// Command hoistexpand reads a sequence of forms, treats them as one body,
// and prints the hoisted expansion. It is a thin wrapper over the hoist
// package; the transform itself knows nothing about files or flags.
//
// Usage:
//
//	hoistexpand [-label name] [-run] [file]
//
// With no file the forms are read from stdin. -label wraps the expansion in
// a named block; -run also evaluates the expansion and prints its value.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mateusz834/tgoast/token"

	"github.com/hoist-lang/hoist/hoist"
	"github.com/hoist-lang/hoist/interp"
	"github.com/hoist-lang/hoist/sexpr"
)

var (
	label = flag.String("label", "", "wrap the expansion in a block with this `name`")
	run   = flag.Bool("run", false, "evaluate the expansion and print its value")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: hoistexpand [-label name] [-run] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		src  []byte
		name string
		err  error
	)
	switch flag.NArg() {
	case 0:
		name = "<stdin>"
		src, err = io.ReadAll(os.Stdin)
	case 1:
		name = flag.Arg(0)
		src, err = os.ReadFile(name)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}

	fs := token.NewFileSet()
	forms, err := sexpr.Read(fs, name, string(src))
	if err != nil {
		fail(err)
	}
	res, err := hoist.Hoist(fs, forms)
	if err != nil {
		fail(err)
	}

	var out sexpr.Node = hoist.Assemble(res)
	if *label != "" {
		out = hoist.WrapNamed(sexpr.Sym(*label), res)
	}
	fmt.Println(sexpr.Format(out))

	if *run {
		v, err := interp.New().Run([]sexpr.Node{out})
		if err != nil {
			fail(err)
		}
		fmt.Println(interp.FormatValue(v))
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "hoistexpand:", err)
	os.Exit(1)
}
