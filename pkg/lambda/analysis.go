package lambda

import "github.com/hashicorp/go-set/v3"

// FreeLevels collects the indices of variable occurrences not bound within
// t. Under the level scheme an occurrence Var(i) lying below d enclosing
// binders is bound iff i < d; the raw indices reported here are meaningful
// when t is read at the root of a tree.
func FreeLevels(t Term) *set.Set[uint] {
	free := set.New[uint](0)
	collectFree(t, 0, free)
	return free
}

func collectFree(t Term, depth uint, free *set.Set[uint]) {
	switch t := t.(type) {
	case Var:
		if t.Index >= depth {
			free.Insert(t.Index)
		}
	case Func:
		collectFree(t.Body, depth+1, free)
	case App:
		collectFree(t.Lhs, depth, free)
		collectFree(t.Rhs, depth, free)
	}
}

// Closed reports whether t has no free variables.
func Closed(t Term) bool {
	return FreeLevels(t).Size() == 0
}
