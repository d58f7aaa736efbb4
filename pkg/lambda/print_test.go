package lambda

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	cases := []struct {
		term Term
		want string
	}{
		{V(0), "0"},
		{V(42), "42"},
		{F(V(0)), "λ.(0)"},
		{A(V(0), V(1)), "(0 1)"},
		{A(F(V(0)), V(5)), "(λ.(0) 5)"},
		{F(F(A(V(0), V(1)))), "λ.(λ.((0 1)))"},
		{A(A(V(0), V(1)), F(V(2))), "((0 1) λ.(2))"},
	}
	for _, tc := range cases {
		if got := tc.term.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFprint(t *testing.T) {
	var sb strings.Builder
	if err := Fprint(&sb, A(F(V(0)), V(5))); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got, want := sb.String(), "(λ.(0) 5)"; got != want {
		t.Errorf("Fprint wrote %q, want %q", got, want)
	}
}
