package lambda

// Term is a lambda term in De Bruijn level notation. Terms are built through
// the V, F and A factories, are immutable afterwards, and form a strictly
// tree-owned structure: no sharing, no cycles.
type Term interface {
	// Size is the total node count of the subtree.
	Size() uint
	// Equals reports structural equality: same variant, same index for
	// variables, recursively equal children otherwise. De Bruijn terms are
	// already canonical, so no alpha-renaming is ever considered.
	Equals(other Term) bool
	// Lift returns the term with every variable index at or above cutoff
	// raised by amount. See lift.go for the level-scheme cutoff rule.
	Lift(amount, cutoff uint) Term
	// Substitute eliminates the binder class varIndex, replacing its
	// occurrences with arg. See substitute.go.
	Substitute(liftAmount, varIndex uint, arg Term) Term
	// ReduceOneStep performs the single leftmost-outermost beta step, if
	// any. depth counts binders from the reduction root to this position.
	ReduceOneStep(depth uint) (Term, bool)
	String() string
}

// Var references a binder by its level.
type Var struct {
	Index uint
}

// Func is a single-argument abstraction.
type Func struct {
	Body Term

	size uint
}

// App applies Lhs to Rhs.
type App struct {
	Lhs Term
	Rhs Term

	size uint
}

// V, F and A are the term factories. Func and App cache their subtree size
// at construction; since terms are immutable the cache never goes stale.

func V(index uint) Term { return Var{Index: index} }

func F(body Term) Term { return Func{Body: body, size: 1 + body.Size()} }

func A(lhs, rhs Term) Term {
	return App{Lhs: lhs, Rhs: rhs, size: 1 + lhs.Size() + rhs.Size()}
}

func (v Var) Size() uint { return 1 }

func (f Func) Size() uint { return f.size }

func (a App) Size() uint { return a.size }

// Clone returns a deep, independently owned copy of t. Lifting by zero with
// cutoff zero rewrites every node without changing any index.
func Clone(t Term) Term { return t.Lift(0, 0) }

func (v Var) Equals(other Term) bool {
	o, ok := other.(Var)
	return ok && v.Index == o.Index
}

func (f Func) Equals(other Term) bool {
	o, ok := other.(Func)
	return ok && f.Body.Equals(o.Body)
}

func (a App) Equals(other Term) bool {
	o, ok := other.(App)
	return ok && a.Lhs.Equals(o.Lhs) && a.Rhs.Equals(o.Rhs)
}
