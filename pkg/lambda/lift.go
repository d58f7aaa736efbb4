package lambda

// Lift raises every variable with index >= cutoff by amount; indices below
// the cutoff reference binders outside the lifted region and are left
// alone.

func (v Var) Lift(amount, cutoff uint) Term {
	if v.Index < cutoff {
		return V(v.Index)
	}
	return V(v.Index + amount)
}

func (f Func) Lift(amount, cutoff uint) Term {
	// The cutoff does not increase here: the whole subtree is lifted by the
	// same amount, and the binder this Func introduces does not change what
	// counts as outside the subtree's root. This is specific to the level
	// scheme — index-style De Bruijn would increment the cutoff at every
	// binder.
	return F(f.Body.Lift(amount, cutoff))
}

func (a App) Lift(amount, cutoff uint) Term {
	return A(a.Lhs.Lift(amount, cutoff), a.Rhs.Lift(amount, cutoff))
}
