package numeric

import "math/big"

// Operation tags for error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opQuo = "Quo"
)

// Neg returns -v.
func (v Value) Neg() Value {
	v = v.Simplify()
	out := Value{kind: v.kind, a: new(big.Rat).Neg(v.a), d: v.d}
	if v.kind == Algebraic {
		out.b = new(big.Rat).Neg(v.b)
	}

	return out
}

// Add returns v + w.
func (v Value) Add(w Value) (Value, error) {
	v, w = v.Simplify(), w.Simplify()
	d, err := commonRadicand(v, w)
	if err != nil {
		return Value{}, numericErrorf(opAdd, err)
	}
	a := new(big.Rat).Add(v.a, w.a)
	b := new(big.Rat).Add(rat(v.b), rat(w.b))

	return join(a, b, d), nil
}

// Sub returns v - w.
func (v Value) Sub(w Value) (Value, error) {
	out, err := v.Add(w.Neg())
	if err != nil {
		return Value{}, numericErrorf(opSub, err)
	}

	return out, nil
}

// Mul returns v · w.
//
//	(a1 + b1√d)(a2 + b2√d) = (a1a2 + b1b2·d) + (a1b2 + a2b1)√d
func (v Value) Mul(w Value) (Value, error) {
	v, w = v.Simplify(), w.Simplify()
	d, err := commonRadicand(v, w)
	if err != nil {
		return Value{}, numericErrorf(opMul, err)
	}
	b1, b2 := rat(v.b), rat(w.b)

	a := new(big.Rat).Mul(v.a, w.a)
	bb := new(big.Rat).Mul(b1, b2)
	bb.Mul(bb, new(big.Rat).SetInt64(d))
	a.Add(a, bb)

	b := new(big.Rat).Mul(v.a, b2)
	b.Add(b, new(big.Rat).Mul(w.a, b1))

	return join(a, b, d), nil
}

// Quo returns v / w. The quotient is always exact; a zero divisor fails
// with ErrDivisionByZero.
//
// Implementation:
//   - Stage 1: rational divisor: scale both parts of v by 1/w.
//   - Stage 2: algebraic divisor: multiply by the conjugate a2 - b2√d and
//     divide by the norm a2² - b2²·d, which is non-zero for square-free d.
func (v Value) Quo(w Value) (Value, error) {
	v, w = v.Simplify(), w.Simplify()
	if w.IsZero() {
		return Value{}, numericErrorf(opQuo, ErrDivisionByZero)
	}
	if w.kind == Rational {
		inv := new(big.Rat).Inv(w.a)
		a := new(big.Rat).Mul(v.a, inv)
		b := new(big.Rat).Mul(rat(v.b), inv)

		return join(a, b, v.d), nil
	}

	conj := Value{kind: Algebraic, a: w.a, b: new(big.Rat).Neg(w.b), d: w.d}
	num, err := v.Mul(conj)
	if err != nil {
		return Value{}, numericErrorf(opQuo, err)
	}
	norm := new(big.Rat).Mul(w.a, w.a)
	bb := new(big.Rat).Mul(w.b, w.b)
	bb.Mul(bb, new(big.Rat).SetInt64(w.d))
	norm.Sub(norm, bb)

	return num.Quo(FromBig(norm))
}

// commonRadicand returns the radicand shared by two simplified values.
// Rationals adopt the radicand of the other operand.
func commonRadicand(v, w Value) (int64, error) {
	switch {
	case v.kind == Rational:
		return w.d, nil
	case w.kind == Rational:
		return v.d, nil
	case v.d != w.d:
		return 0, ErrIncompatibleRadicands
	default:
		return v.d, nil
	}
}

// join builds a simplified value from a + b√d.
func join(a, b *big.Rat, d int64) Value {
	if d == 0 || b.Sign() == 0 {
		return Value{kind: Rational, a: a}
	}

	return Value{kind: Algebraic, a: a, b: b, d: d}.Simplify()
}
