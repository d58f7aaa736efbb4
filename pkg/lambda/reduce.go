package lambda

// ReduceOneStep finds and performs the single leftmost-outermost beta
// redex. The ordering — redex check before recursing left, left before
// right — makes the strategy normal order: if a term has a normal form,
// iterating this step reaches it.

func (v Var) ReduceOneStep(depth uint) (Term, bool) {
	// Variables never reduce.
	return nil, false
}

func (f Func) ReduceOneStep(depth uint) (Term, bool) {
	body, ok := f.Body.ReduceOneStep(depth + 1)
	if !ok {
		return nil, false
	}
	return F(body), true
}

func (a App) ReduceOneStep(depth uint) (Term, bool) {
	// If the lhs is an abstraction this App is itself a redex; contracting
	// it takes priority over reducing either child.
	if fn, ok := a.Lhs.(Func); ok {
		return fn.Body.Substitute(0, depth, a.Rhs), true
	}

	if lhs, ok := a.Lhs.ReduceOneStep(depth); ok {
		return A(lhs, a.Rhs), true
	}

	if rhs, ok := a.Rhs.ReduceOneStep(depth); ok {
		return A(a.Lhs, rhs), true
	}

	return nil, false
}
