package lambda

import "github.com/samber/lo"

// ConstructProgram builds the binding tower
//
//	((λ.((λ.((λ.main) h2)) h1)) h0)
//
// over helpers [h0, h1, h2, ...]. Normalizing the result beta-substitutes
// each helper into its binder in order, so that inside main, Var(k) refers
// to the k-th helper: helper definitions behave as global constants
// addressed by level, with no reduction rule beyond beta. The construction
// itself reduces nothing.
//
// With no helpers the result is just an independent copy of mainFn.
func ConstructProgram(helpers []Term, mainFn Term) Term {
	return lo.ReduceRight(helpers, func(acc Term, helper Term, _ int) Term {
		return A(F(acc), Clone(helper))
	}, Clone(mainFn))
}

// Definitions accumulates helper terms for ConstructProgram and keeps the
// level bookkeeping straight. Helper k sits under k tower binders, so its
// own binders must be numbered from k upward; Local provides that offset
// while a helper is being authored, and Define hands back the global
// reference V(k) that every later helper and the main term use for it.
type Definitions struct {
	helpers []Term
}

// Depth is the number of helpers defined so far, which is also the binder
// depth the next helper will be placed at.
func (d *Definitions) Depth() uint { return uint(len(d.helpers)) }

// Local returns the variable for binder i of the helper currently being
// authored.
func (d *Definitions) Local(i uint) Term { return V(d.Depth() + i) }

// Define appends a helper and returns its global reference.
func (d *Definitions) Define(helper Term) Term {
	ref := V(d.Depth())
	d.helpers = append(d.helpers, helper)
	return ref
}

// Ref returns the global reference for helper k.
func (d *Definitions) Ref(k uint) Term { return V(k) }

// Helpers returns an independent copy of the helper list.
func (d *Definitions) Helpers() []Term {
	return lo.Map(d.helpers, func(t Term, _ int) Term { return Clone(t) })
}

// Program wraps mainFn in the binding tower over every defined helper.
func (d *Definitions) Program(mainFn Term) Term {
	return ConstructProgram(d.helpers, mainFn)
}
