// Package numeric provides the exact values stored in a frieze lattice.
//
// 🚀 What is a Value?
//
//	A Value is either an exact rational number in lowest terms (Rational)
//	or an element a + b·√d of a real quadratic field (Algebraic), where a
//	and b are rationals and d is a square-free integer greater than one.
//
// ✨ Key features:
//   - exact Add / Sub / Mul / Quo (no floating point anywhere)
//   - explicit kind tag instead of runtime type probing
//   - Simplify canonicalises radicals: √8 → 2·√2, √9 → 3
//   - Parse / String round-trip: "3", "-2/5", "sqrt(2)", "1+2*sqrt(3)"
//
// ⚙️ Usage:
//
//	x, _ := numeric.Parse("1+sqrt(2)")
//	y := numeric.Int(2)
//	q, err := x.Quo(y) // (1+√2)/2 == 1/2+1/2*sqrt(2)
//
// Division by zero returns ErrDivisionByZero; mixing two different
// radicands returns ErrIncompatibleRadicands.
package numeric
