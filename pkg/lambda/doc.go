// Package lambda implements a term-rewriting engine for the untyped lambda
// calculus over De Bruijn levels: a variable's index counts the
// abstractions enclosing its binder, measured from the outermost
// abstraction of the tree under consideration, not from the occurrence
// inward.
//
// The package provides term factories (V, F, A), the lift/substitute index
// algebra, single-step leftmost-outermost beta-reduction, and a bounded
// normalization driver. ConstructProgram builds a nested-abstraction
// binding tower so that a sequence of helper terms can be referenced from a
// main term as if they were global constants, using beta-reduction alone.
package lambda
