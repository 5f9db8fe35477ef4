package interp

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hoist-lang/hoist/sexpr"
)

var builtins = map[string]func(args []any) (any, error){
	"list": func(args []any) (any, error) {
		return append([]any(nil), args...), nil
	},
	// do evaluates its arguments (the caller already did) and yields the
	// last one; with no arguments it yields nil.
	"do": func(args []any) (any, error) {
		if len(args) == 0 {
			return nil, nil
		}
		return args[len(args)-1], nil
	},
	"+": func(args []any) (any, error) { return fold(args, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }) },
	"-": func(args []any) (any, error) { return fold(args, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }) },
	"*": func(args []any) (any, error) { return fold(args, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }) },
	"=": func(args []any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("want 2 arguments, got %d", len(args))
		}
		return reflect.DeepEqual(args[0], args[1]), nil
	},
	"<": func(args []any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("want 2 arguments, got %d", len(args))
		}
		a, b, isInt, err := pair(args[0], args[1])
		if err != nil {
			return nil, err
		}
		if isInt {
			return int64(a) < int64(b), nil
		}
		return a < b, nil
	},
}

// fold applies an arithmetic op left to right. Integer arguments stay
// integers; one float argument makes the whole result a float.
func fold(args []any, fi func(a, b int64) int64, ff func(a, b float64) float64) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("want at least 1 argument")
	}
	acc := args[0]
	for _, v := range args[1:] {
		a, b, isInt, err := pair(acc, v)
		if err != nil {
			return nil, err
		}
		if isInt {
			acc = fi(int64(a), int64(b))
		} else {
			acc = ff(a, b)
		}
	}
	if _, ok := acc.(int64); !ok {
		if _, ok := acc.(float64); !ok {
			return nil, fmt.Errorf("%v is not a number", FormatValue(acc))
		}
	}
	return acc, nil
}

func pair(x, y any) (a, b float64, isInt bool, err error) {
	ax, ix, ok := num(x)
	if !ok {
		return 0, 0, false, fmt.Errorf("%v is not a number", FormatValue(x))
	}
	ay, iy, ok := num(y)
	if !ok {
		return 0, 0, false, fmt.Errorf("%v is not a number", FormatValue(y))
	}
	return ax, ay, ix && iy, nil
}

func num(v any) (f float64, isInt, ok bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true, true
	case float64:
		return v, false, true
	}
	return 0, false, false
}

// FormatValue renders a value the way the REPL-ish CLI prints results.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	case []any:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, e := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(FormatValue(e))
		}
		sb.WriteByte(')')
		return sb.String()
	case sexpr.Node:
		return sexpr.Format(v)
	case Builtin:
		return "#<builtin>"
	}
	return fmt.Sprintf("%v", v)
}
