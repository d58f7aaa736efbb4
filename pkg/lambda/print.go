package lambda

import (
	"io"
	"strconv"
)

// The printer produces a fully parenthesized debugging notation with raw De
// Bruijn indices: λ.(body) for abstraction, (lhs rhs) for application. It
// is not a serialization format and has no parser.

func (v Var) String() string {
	return strconv.FormatUint(uint64(v.Index), 10)
}

func (f Func) String() string {
	return "λ.(" + f.Body.String() + ")"
}

func (a App) String() string {
	return "(" + a.Lhs.String() + " " + a.Rhs.String() + ")"
}

// Fprint writes the printed form of t to w.
func Fprint(w io.Writer, t Term) error {
	_, err := io.WriteString(w, t.String())
	return err
}
