package lambda

// Substitute eliminates the binder class varIndex, adjusting every other
// variable for the removal of exactly one enclosing binder. varIndex is the
// depth of the eliminated lambda counted from the root of the top-level
// reduction; liftAmount starts at 0 at the redex and grows by one per Func
// crossed on the way down.

func (v Var) Substitute(liftAmount, varIndex uint, arg Term) Term {
	if v.Index > varIndex {
		// Bound inside the redex; the removed binder made it one level
		// shallower.
		return V(v.Index - 1)
	}

	if v.Index < varIndex {
		// Bound outside the redex entirely; untouched.
		return V(v.Index)
	}

	// The occurrence being replaced: re-lift arg by the number of binders
	// crossed between the redex root and this occurrence, so that anything
	// free relative to arg stays correctly scoped at this depth.
	return arg.Lift(liftAmount, varIndex)
}

func (f Func) Substitute(liftAmount, varIndex uint, arg Term) Term {
	// One more binder now lies between the redex root and the body.
	return F(f.Body.Substitute(liftAmount+1, varIndex, arg))
}

func (a App) Substitute(liftAmount, varIndex uint, arg Term) Term {
	return A(
		a.Lhs.Substitute(liftAmount, varIndex, arg),
		a.Rhs.Substitute(liftAmount, varIndex, arg),
	)
}
