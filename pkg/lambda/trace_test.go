package lambda

import "testing"

func TestTraceRecordsSteps(t *testing.T) {
	term := A(A(F(V(0)), V(5)), A(F(V(1)), V(6)))

	tr := NewTrace(8)
	res := NormalizeObserved(term, Unbounded, Unbounded, tr.Observer())

	events := tr.Snapshot()
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want 2", len(events))
	}

	if events[0].Step != 1 || events[0].Size != 6 {
		t.Errorf("first event = %+v, want step 1 size 6", events[0])
	}
	if !events[0].Term.Equals(A(V(5), A(F(V(1)), V(6)))) {
		t.Errorf("first event term = %s", events[0].Term)
	}

	if events[1].Step != 2 || events[1].Size != 3 {
		t.Errorf("second event = %+v, want step 2 size 3", events[1])
	}
	if !events[1].Term.Equals(res.Term) {
		t.Errorf("last event term %s does not match result %s", events[1].Term, res.Term)
	}
}

func TestTraceDropsPastCapacity(t *testing.T) {
	omega := A(F(A(V(0), V(0))), F(A(V(0), V(0))))

	tr := NewTrace(3)
	res := NormalizeObserved(omega, 5, Unbounded, tr.Observer())
	if res.Steps != 5 || !res.StepExcess {
		t.Fatalf("omega run = %+v, want 5 steps and step excess", res)
	}

	events := tr.Snapshot()
	if len(events) != 3 {
		t.Fatalf("recorded %d events, want capacity 3", len(events))
	}
	for i, ev := range events {
		if ev.Step != uint(i+1) {
			t.Errorf("event %d has step %d, want %d", i, ev.Step, i+1)
		}
		if !ev.Term.Equals(omega) {
			t.Errorf("event %d term = %s, want omega", i, ev.Term)
		}
	}
}

func TestTraceMinimumCapacity(t *testing.T) {
	tr := NewTrace(0)
	NormalizeObserved(A(F(V(0)), V(5)), Unbounded, Unbounded, tr.Observer())
	events := tr.Snapshot()
	if len(events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events))
	}
	if !events[0].Term.Equals(V(5)) {
		t.Errorf("event term = %s, want 5", events[0].Term)
	}
}

func TestTraceSnapshotIsACopy(t *testing.T) {
	tr := NewTrace(4)
	NormalizeObserved(A(F(V(0)), V(5)), Unbounded, Unbounded, tr.Observer())

	first := tr.Snapshot()
	first[0].Step = 99

	second := tr.Snapshot()
	if second[0].Step != 1 {
		t.Errorf("snapshot mutation leaked into the recorder: step %d", second[0].Step)
	}
}
