package numeric

import (
	"errors"
	"fmt"
)

// Sentinel errors for numeric operations.
var (
	// ErrDivisionByZero indicates a quotient with a zero divisor.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrZeroDenominator indicates a rational built with denominator 0.
	ErrZeroDenominator = errors.New("numeric: zero denominator")

	// ErrNegativeRadicand indicates sqrt(n) was requested for n < 0.
	ErrNegativeRadicand = errors.New("numeric: negative radicand")

	// ErrIncompatibleRadicands indicates an operation between sqrt(d1) and
	// sqrt(d2) terms with d1 != d2; the result would leave the quadratic field.
	ErrIncompatibleRadicands = errors.New("numeric: incompatible radicands")

	// ErrSyntax indicates Parse could not read its input.
	ErrSyntax = errors.New("numeric: invalid syntax")
)

// numericErrorf wraps err with an operation tag, preserving it for errors.Is.
func numericErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
