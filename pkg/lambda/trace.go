package lambda

// TraceEvent records one committed reduction step.
type TraceEvent struct {
	Step uint
	Size uint
	Term Term
}

// Trace is a bounded recorder of reduction steps. Events past the capacity
// are dropped rather than grown, so tracing a runaway reduction stays
// cheap.
type Trace struct {
	buf []TraceEvent
	n   int
}

// NewTrace returns a recorder holding at most capacity events.
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		capacity = 1
	}
	return &Trace{buf: make([]TraceEvent, capacity)}
}

// Observer returns the StepObserver feeding this trace; pass it to
// NormalizeObserved.
func (tr *Trace) Observer() StepObserver {
	return func(step uint, term Term) {
		if tr.n >= len(tr.buf) {
			return
		}
		tr.buf[tr.n] = TraceEvent{Step: step, Size: term.Size(), Term: term}
		tr.n++
	}
}

// Snapshot returns a copy of the recorded events.
func (tr *Trace) Snapshot() []TraceEvent {
	res := make([]TraceEvent, tr.n)
	copy(res, tr.buf[:tr.n])
	return res
}
