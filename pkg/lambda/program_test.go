package lambda

import "testing"

func TestConstructProgramNoHelpers(t *testing.T) {
	mainFn := F(A(V(0), V(1)))
	got := ConstructProgram(nil, mainFn)
	if !got.Equals(mainFn) {
		t.Errorf("ConstructProgram(nil, %s) = %s, want the main term", mainFn, got)
	}
	assertSizeInvariant(t, got)
}

func TestConstructProgramShape(t *testing.T) {
	h0 := F(V(0))
	h1 := F(V(1))
	mainFn := V(1)

	got := ConstructProgram([]Term{h0, h1}, mainFn)
	// ((λ.((λ.main) h1)) h0): h0 binds the outermost level, h1 the next.
	want := A(F(A(F(V(1)), F(V(1)))), F(V(0)))
	if !got.Equals(want) {
		t.Errorf("tower = %s, want %s", got, want)
	}
	assertSizeInvariant(t, got)
}

func TestConstructProgramDoesNotReduce(t *testing.T) {
	redex := A(F(V(0)), V(5))
	got := ConstructProgram([]Term{redex}, V(0))
	want := A(F(V(0)), A(F(V(0)), V(5)))
	if !got.Equals(want) {
		t.Errorf("tower = %s, want the helper redex intact: %s", got, want)
	}
}

func TestDefinitionsBookkeeping(t *testing.T) {
	d := &Definitions{}
	if d.Depth() != 0 {
		t.Fatalf("fresh Definitions depth %d, want 0", d.Depth())
	}
	if !d.Local(3).Equals(V(3)) {
		t.Errorf("Local(3) at depth 0 = %s, want 3", d.Local(3))
	}

	first := d.Define(F(d.Local(0)))
	if !first.Equals(V(0)) {
		t.Errorf("first Define returned %s, want 0", first)
	}
	if d.Depth() != 1 {
		t.Errorf("depth after one Define %d, want 1", d.Depth())
	}
	if !d.Local(0).Equals(V(1)) {
		t.Errorf("Local(0) at depth 1 = %s, want 1", d.Local(0))
	}

	second := d.Define(F(F(d.Local(1))))
	if !second.Equals(V(1)) {
		t.Errorf("second Define returned %s, want 1", second)
	}
	if !d.Ref(0).Equals(first) || !d.Ref(1).Equals(second) {
		t.Errorf("Ref disagrees with Define: %s %s", d.Ref(0), d.Ref(1))
	}

	helpers := d.Helpers()
	if len(helpers) != 2 {
		t.Fatalf("Helpers() returned %d terms, want 2", len(helpers))
	}
	if !helpers[0].Equals(F(V(0))) || !helpers[1].Equals(F(F(V(2)))) {
		t.Errorf("Helpers() = [%s %s]", helpers[0], helpers[1])
	}
}

func TestDefinitionsProgramNormalizes(t *testing.T) {
	// A single identity helper applied to a main-local abstraction. The
	// main term's own binder sits under one tower binder, so Local(0)
	// names it while authoring; after the tower is eliminated it lands at
	// level 0.
	d := &Definitions{}
	id := d.Define(F(d.Local(0)))
	mainFn := A(id, F(d.Local(0)))

	res := NormalizeUnbounded(d.Program(mainFn))
	assertResult(t, res, F(V(0)), 2, 5, false, false)
}
