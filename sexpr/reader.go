package sexpr

import (
	"fmt"

	"github.com/mateusz834/tgoast/token"
)

// ReadError reports a syntax error in the surface form.
type ReadError struct {
	Pos     token.Position
	Message string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Message)
}

// Read parses src into its sequence of top-level forms. filename is only
// used for positions. Whitespace separates forms; a ';' comment runs to the
// end of the line.
func Read(fs *token.FileSet, filename, src string) ([]Node, error) {
	r := &reader{
		file: fs.AddFile(filename, fs.Base(), len(src)),
		src:  src,
	}
	var forms []Node
	for {
		r.skipWhite()
		if r.off == len(r.src) {
			return forms, nil
		}
		n, err := r.form()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
}

type reader struct {
	file *token.File
	src  string
	off  int
}

func (r *reader) pos() token.Pos {
	return r.file.Pos(r.off)
}

func (r *reader) errorf(off int, format string, args ...any) error {
	return &ReadError{
		Pos:     r.file.Position(r.file.Pos(off)),
		Message: fmt.Sprintf(format, args...),
	}
}

func (r *reader) skipWhite() {
	for r.off < len(r.src) {
		switch r.src[r.off] {
		case ' ', '\t', '\r':
			r.off++
		case '\n':
			r.off++
			r.file.AddLine(r.off)
		case ';':
			for r.off < len(r.src) && r.src[r.off] != '\n' {
				r.off++
			}
		default:
			return
		}
	}
}

func (r *reader) form() (Node, error) {
	switch c := r.src[r.off]; {
	case c == '(':
		return r.list()
	case c == ')':
		return nil, r.errorf(r.off, "unexpected )")
	case c == '"':
		return r.str()
	case isDigit(c), c == '-' && r.off+1 < len(r.src) && isDigit(r.src[r.off+1]):
		return r.number()
	default:
		return r.symbol()
	}
}

func (r *reader) list() (Node, error) {
	l := &List{Lparen: r.pos()}
	open := r.off
	r.off++
	for {
		r.skipWhite()
		if r.off == len(r.src) {
			return nil, r.errorf(open, "missing )")
		}
		if r.src[r.off] == ')' {
			l.Rparen = r.pos()
			r.off++
			return l, nil
		}
		n, err := r.form()
		if err != nil {
			return nil, err
		}
		l.Items = append(l.Items, n)
	}
}

func (r *reader) str() (Node, error) {
	s := &String{ValuePos: r.pos()}
	open := r.off
	for i := r.off + 1; i < len(r.src); i++ {
		switch r.src[i] {
		case '\\':
			i++
		case '\n':
			return nil, r.errorf(open, "unterminated string")
		case '"':
			s.Raw = r.src[r.off : i+1]
			r.off = i + 1
			return s, nil
		}
	}
	return nil, r.errorf(open, "unterminated string")
}

func (r *reader) number() (Node, error) {
	n := &Number{ValuePos: r.pos()}
	i := r.off
	if r.src[i] == '-' {
		i++
	}
	for i < len(r.src) && (isDigit(r.src[i]) || r.src[i] == '.') {
		i++
	}
	n.Raw = r.src[r.off:i]
	r.off = i
	return n, nil
}

func (r *reader) symbol() (Node, error) {
	s := &Symbol{NamePos: r.pos()}
	i := r.off
	for i < len(r.src) && !isDelim(r.src[i]) {
		i++
	}
	s.Name = r.src[r.off:i]
	r.off = i
	return s, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', ';':
		return true
	}
	return false
}
