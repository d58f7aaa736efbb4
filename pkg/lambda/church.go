package lambda

// Prelude is a standard helper set for binding-tower programs: church
// booleans and numerals with successor, addition and multiplication. Each
// field holds the global reference returned by Define; the underlying
// helper bodies are authored with Local so their binders land at the right
// tower depth.
type Prelude struct {
	Defs *Definitions

	True  Term
	False Term
	Zero  Term
	Succ  Term
	Add   Term
	Mult  Term
}

// NewPrelude defines the helpers in a fixed order (True, False, Zero, Succ,
// Add, Mult).
func NewPrelude() *Prelude {
	d := &Definitions{}
	p := &Prelude{Defs: d}

	// λ.λ.first
	p.True = d.Define(F(F(d.Local(0))))

	// λ.λ.second
	p.False = d.Define(F(F(d.Local(1))))

	// λf.λx.x
	p.Zero = d.Define(F(F(d.Local(1))))

	// λn.λf.λx. f (n f x)
	p.Succ = d.Define(F(F(F(
		A(d.Local(1), A(A(d.Local(0), d.Local(1)), d.Local(2))),
	))))

	// λm.λn.λf.λx. (m f) ((n f) x)
	p.Add = d.Define(F(F(F(F(
		A(A(d.Local(0), d.Local(2)), A(A(d.Local(1), d.Local(2)), d.Local(3))),
	)))))

	// λm.λn.λf.λx. (m (n f)) x
	p.Mult = d.Define(F(F(F(F(
		A(A(d.Local(0), A(d.Local(1), d.Local(2))), d.Local(3)),
	)))))

	return p
}

// Numeral returns the unreduced main term SUCC^n ZERO.
func (p *Prelude) Numeral(n uint) Term {
	t := Clone(p.Zero)
	for i := uint(0); i < n; i++ {
		t = A(Clone(p.Succ), t)
	}
	return t
}

// CanonicalNumeral returns the beta-normal form a numeral program reduces
// to: λ.λ.(0 (0 ... (0 1))). Once the tower binders are eliminated, the
// main term's own binders land at levels 0 and 1.
func (p *Prelude) CanonicalNumeral(n uint) Term {
	body := V(1)
	for i := uint(0); i < n; i++ {
		body = A(V(0), body)
	}
	return F(F(body))
}

// Program wraps mainFn in the binding tower over the prelude helpers.
func (p *Prelude) Program(mainFn Term) Term {
	return p.Defs.Program(mainFn)
}
