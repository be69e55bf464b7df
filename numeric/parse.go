package numeric

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	sqrtOpen  = "sqrt("
	sqrtClose = ")"
)

// Parse reads a Value from text. Accepted forms, whitespace ignored:
//
//	3   -2/5   1.5   sqrt(2)   -sqrt(8)   3*sqrt(5)   1+2*sqrt(3)   1/2-1/3*sqrt(7)
//
// The result is simplified.
func Parse(s string) (Value, error) {
	src := strings.Join(strings.Fields(s), "")
	if src == "" {
		return Value{}, syntaxErrorf(s)
	}

	idx := strings.Index(src, sqrtOpen)
	if idx < 0 {
		r, ok := new(big.Rat).SetString(src)
		if !ok {
			return Value{}, syntaxErrorf(s)
		}

		return FromBig(r), nil
	}
	if !strings.HasSuffix(src, sqrtClose) {
		return Value{}, syntaxErrorf(s)
	}

	radicand, err := strconv.ParseInt(src[idx+len(sqrtOpen):len(src)-len(sqrtClose)], 10, 64)
	if err != nil {
		return Value{}, syntaxErrorf(s)
	}
	if radicand < 0 {
		return Value{}, numericErrorf("Parse", ErrNegativeRadicand)
	}

	a, b, err := splitPrefix(src[:idx])
	if err != nil {
		return Value{}, syntaxErrorf(s)
	}
	v, err := NewAlgebraic(a, b, radicand)
	if err != nil {
		return Value{}, err
	}

	return v.Simplify(), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// splitPrefix reads the "a±b*" part in front of sqrt(...).
func splitPrefix(prefix string) (a, b *big.Rat, err error) {
	hasStar := strings.HasSuffix(prefix, "*")
	p := strings.TrimSuffix(prefix, "*")

	ratPart, coefPart := "", p
	if k := strings.LastIndexAny(p, "+-"); k > 0 {
		ratPart, coefPart = p[:k], p[k:]
	}

	a = new(big.Rat)
	if ratPart != "" {
		if _, ok := a.SetString(ratPart); !ok {
			return nil, nil, ErrSyntax
		}
	}

	switch coefPart {
	case "", "+":
		if hasStar {
			return nil, nil, ErrSyntax
		}
		b = big.NewRat(1, 1)
	case "-":
		if hasStar {
			return nil, nil, ErrSyntax
		}
		b = big.NewRat(-1, 1)
	default:
		if !hasStar {
			return nil, nil, ErrSyntax
		}
		var ok bool
		if b, ok = new(big.Rat).SetString(coefPart); !ok {
			return nil, nil, ErrSyntax
		}
	}

	return a, b, nil
}

func syntaxErrorf(input string) error {
	return fmt.Errorf("Parse(%q): %w", input, ErrSyntax)
}
