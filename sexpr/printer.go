package sexpr

import "strings"

// Format renders a form as surface text. Positions are ignored; list items
// are separated by single spaces.
func Format(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

// FormatSeq renders a sequence of top-level forms, one per line.
func FormatSeq(forms []Node) string {
	var sb strings.Builder
	for _, n := range forms {
		write(&sb, n)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Symbol:
		sb.WriteString(n.Name)
	case *Number:
		sb.WriteString(n.Raw)
	case *String:
		sb.WriteString(n.Raw)
	case *List:
		sb.WriteByte('(')
		for i, v := range n.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			write(sb, v)
		}
		sb.WriteByte(')')
	default:
		panic("unreachable")
	}
}
