package lambda

// Unbounded disables a normalization limit.
const Unbounded = ^uint(0)

// Result reports the outcome of a normalization run. SizePeak stays at the
// uint minimum until a reduction commits: a term that never reduces reports
// 0, not its own size. StepExcess and SizeExcess are not errors — they
// signal that a bound was hit before normal form, with Term holding the
// last committed state.
type Result struct {
	Term       Term
	Steps      uint
	SizePeak   uint
	StepExcess bool
	SizeExcess bool
}

// StepObserver receives each committed reduction, step counting from 1.
type StepObserver func(step uint, term Term)

// Normalize iterates leftmost-outermost reduction on a clone of t until no
// redex remains or a bound is hit. Beta-reduction is not guaranteed to
// terminate (the omega combinator reduces to itself forever) and terms can
// grow without bound, so stepLimit and sizeLimit let the caller cap both
// deterministically; pass Unbounded to disable either.
func Normalize(t Term, stepLimit, sizeLimit uint) Result {
	return NormalizeObserved(t, stepLimit, sizeLimit, nil)
}

// NormalizeUnbounded reduces all the way to beta-normal form. It only
// returns if t is normalizing.
func NormalizeUnbounded(t Term) Result {
	return Normalize(t, Unbounded, Unbounded)
}

// NormalizeObserved is Normalize with a hook invoked after every committed
// step; a nil observer is ignored.
func NormalizeObserved(t Term, stepLimit, sizeLimit uint, observe StepObserver) Result {
	res := Result{Term: Clone(t)}

	for {
		reduced, ok := res.Term.ReduceOneStep(0)
		if !ok {
			// Beta-normal form.
			return res
		}

		// Bounds are checked before the candidate is counted or applied, so
		// a run that stops on excess leaves the last committed term intact.
		if res.Steps == stepLimit {
			res.StepExcess = true
			return res
		}

		if reduced.Size() > sizeLimit {
			res.SizeExcess = true
			return res
		}

		res.Term = reduced
		res.Steps++
		if s := reduced.Size(); s > res.SizePeak {
			res.SizePeak = s
		}

		if observe != nil {
			observe(res.Steps, res.Term)
		}
	}
}
