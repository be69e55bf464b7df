package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Kind tags the representation held by a Value.
type Kind int

const (
	// Rational values are exact fractions in lowest terms.
	Rational Kind = iota

	// Algebraic values are a + b·√d with b != 0 and d square-free, d > 1,
	// once simplified.
	Algebraic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Rational:
		return "rational"
	case Algebraic:
		return "algebraic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an immutable exact number. The zero Value is the rational 0.
//
// Rational values use only a. Algebraic values represent a + b·√d; the
// radicand and coefficient are canonical only after Simplify (every
// arithmetic result is simplified before it is returned).
type Value struct {
	kind Kind
	a    *big.Rat // rational part; nil means 0
	b    *big.Rat // coefficient of √d; nil for Rational
	d    int64    // radicand; 0 for Rational
}

// Int returns the rational value n.
func Int(n int64) Value {
	return Value{kind: Rational, a: new(big.Rat).SetInt64(n)}
}

// Ints converts integers to rational values; handy for seeds.
func Ints(xs ...int64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Int(x)
	}

	return out
}

// Zero returns the rational 0, the value of every zero-border cell.
func Zero() Value { return Int(0) }

// One returns the rational 1, the value of every unit-border cell.
func One() Value { return Int(1) }

// NewRat returns num/den in lowest terms.
// Returns ErrZeroDenominator when den == 0.
func NewRat(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, numericErrorf("NewRat", ErrZeroDenominator)
	}

	return Value{kind: Rational, a: big.NewRat(num, den)}, nil
}

// FromBig returns a rational Value holding a copy of r (nil reads as 0).
func FromBig(r *big.Rat) Value {
	return Value{kind: Rational, a: new(big.Rat).Set(rat(r))}
}

// Sqrt returns √n as an unsimplified algebraic value.
// Call Simplify to pull square factors out (√12 → 2·√3, √4 → 2).
func Sqrt(n int64) (Value, error) {
	if n < 0 {
		return Value{}, numericErrorf("Sqrt", ErrNegativeRadicand)
	}

	return Value{kind: Algebraic, a: new(big.Rat), b: big.NewRat(1, 1), d: n}, nil
}

// NewAlgebraic returns the unsimplified value a + b·√d.
func NewAlgebraic(a, b *big.Rat, d int64) (Value, error) {
	if d < 0 {
		return Value{}, numericErrorf("NewAlgebraic", ErrNegativeRadicand)
	}

	return Value{
		kind: Algebraic,
		a:    new(big.Rat).Set(rat(a)),
		b:    new(big.Rat).Set(rat(b)),
		d:    d,
	}, nil
}

// Kind reports the representation tag.
func (v Value) Kind() Kind { return v.kind }

// IsRational reports whether v carries no radical term.
func (v Value) IsRational() bool { return v.kind == Rational }

// IsCanonical reports whether Simplify would return v unchanged.
func (v Value) IsCanonical() bool {
	if v.kind == Rational {
		return true
	}
	if rat(v.b).Sign() == 0 || v.d <= 1 {
		return false
	}
	_, f := squareFree(v.d)

	return f == 1
}

// Simplify returns the canonical form of v.
//
// Implementation:
//   - Stage 1: rationals are returned as-is.
//   - Stage 2: write d = s·f² with s square-free and move f into b.
//   - Stage 3: collapse to Rational when b == 0, d == 0 or s == 1.
//
// Simplify is idempotent: Simplify(Simplify(v)) equals Simplify(v).
func (v Value) Simplify() Value {
	if v.kind == Rational {
		return Value{kind: Rational, a: rat(v.a)}
	}
	a, b := rat(v.a), rat(v.b)
	if b.Sign() == 0 || v.d == 0 {
		return Value{kind: Rational, a: a}
	}
	s, f := squareFree(v.d)
	if f != 1 {
		b = new(big.Rat).Mul(b, new(big.Rat).SetInt64(f))
	}
	if s == 1 {
		return Value{kind: Rational, a: new(big.Rat).Add(a, b)}
	}

	return Value{kind: Algebraic, a: a, b: b, d: s}
}

// Sign returns -1, 0 or +1 according to the sign of v.
// For a + b·√d with a and b of opposite signs it compares a² with b²·d.
func (v Value) Sign() int {
	v = v.Simplify()
	sa := v.a.Sign()
	if v.kind == Rational {
		return sa
	}
	sb := v.b.Sign()
	if sa == 0 || sa == sb {
		return sb
	}
	a2 := new(big.Rat).Mul(v.a, v.a)
	b2d := new(big.Rat).Mul(v.b, v.b)
	b2d.Mul(b2d, new(big.Rat).SetInt64(v.d))
	if a2.Cmp(b2d) > 0 {
		return sa
	}

	return sb
}

// IsZero reports whether v == 0.
func (v Value) IsZero() bool { return v.Sign() == 0 }

// IsInteger reports whether v is a rational with denominator 1.
func (v Value) IsInteger() bool {
	v = v.Simplify()

	return v.kind == Rational && v.a.IsInt()
}

// Equal reports whether v and w denote the same number.
func (v Value) Equal(w Value) bool {
	v, w = v.Simplify(), w.Simplify()
	if v.kind != w.kind || v.a.Cmp(w.a) != 0 {
		return false
	}
	if v.kind == Rational {
		return true
	}

	return v.d == w.d && v.b.Cmp(w.b) == 0
}

// Cmp compares v and w and returns -1, 0 or +1.
// Values over different radicands are compared through Float64.
func (v Value) Cmp(w Value) int {
	diff, err := v.Sub(w)
	if err != nil {
		fv, fw := v.Float64(), w.Float64()
		switch {
		case fv < fw:
			return -1
		case fv > fw:
			return 1
		default:
			return 0
		}
	}

	return diff.Sign()
}

// Float64 returns the nearest float64 approximation of v.
func (v Value) Float64() float64 {
	fa, _ := rat(v.a).Float64()
	if v.kind == Rational {
		return fa
	}
	fb, _ := rat(v.b).Float64()

	return fa + fb*math.Sqrt(float64(v.d))
}

// String formats v in the syntax accepted by Parse.
func (v Value) String() string {
	if v.kind == Rational {
		return rat(v.a).RatString()
	}
	var sb strings.Builder
	a, b := rat(v.a), rat(v.b)
	if a.Sign() != 0 {
		sb.WriteString(a.RatString())
		if b.Sign() >= 0 {
			sb.WriteByte('+')
		}
	}
	switch {
	case b.Cmp(ratOne) == 0:
	case b.Cmp(ratMinusOne) == 0:
		sb.WriteByte('-')
	default:
		sb.WriteString(b.RatString())
		sb.WriteByte('*')
	}
	fmt.Fprintf(&sb, "sqrt(%d)", v.d)

	return sb.String()
}

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

// rat returns r, or a fresh zero when r is nil.
func rat(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}

	return r
}

// squareFree splits n = s·f² with s square-free. n must be positive.
func squareFree(n int64) (s, f int64) {
	f = 1
	for p := int64(2); p*p <= n; p++ {
		for n%(p*p) == 0 {
			n /= p * p
			f *= p
		}
	}

	return n, f
}
