// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ir

import (
	"fmt"
)

// Compare tests the accumulator value of Operand against zero.
//
// Test is one of IS_ZERO, NOT_ZERO, GREATER_THAN_ZERO, LESS_THAN_ZERO,
// GREATER_OR_EQUAL_TO_ZERO or LESS_OR_EQUAL_TO_ZERO.
type Compare struct {
	Test    Kind
	Operand Expression
}

func (c *Compare) Kind() Kind { return c.Test }
func (c *Compare) logical()   {}

func (c *Compare) String() string {
	return fmt.Sprintf("%v(%v)", c.Test, c.Operand)
}

// Holds evaluates the test for an accumulator value.
func (c *Compare) Holds(value int) bool {
	switch c.Test {
	case IS_ZERO:
		return value == 0
	case NOT_ZERO:
		return value != 0
	case GREATER_THAN_ZERO:
		return value > 0
	case LESS_THAN_ZERO:
		return value < 0
	case GREATER_OR_EQUAL_TO_ZERO:
		return value >= 0
	case LESS_OR_EQUAL_TO_ZERO:
		return value <= 0
	}
	return false
}

// IsComparison reports if a kind is one of the zero tests.
func IsComparison(kind Kind) bool {
	return kind >= IS_ZERO && kind <= LESS_OR_EQUAL_TO_ZERO
}

// Comparisons lists every zero test kind.
var Comparisons = []Kind{
	IS_ZERO,
	NOT_ZERO,
	GREATER_THAN_ZERO,
	LESS_THAN_ZERO,
	GREATER_OR_EQUAL_TO_ZERO,
	LESS_OR_EQUAL_TO_ZERO,
}

// Mirror returns the test that holds for -x whenever test holds for x.
func Mirror(test Kind) Kind {
	switch test {
	case GREATER_THAN_ZERO:
		return LESS_THAN_ZERO
	case LESS_THAN_ZERO:
		return GREATER_THAN_ZERO
	case GREATER_OR_EQUAL_TO_ZERO:
		return LESS_OR_EQUAL_TO_ZERO
	case LESS_OR_EQUAL_TO_ZERO:
		return GREATER_OR_EQUAL_TO_ZERO
	}
	return test
}

// NewCompare creates a zero test. It panics on a kind that is not a
// comparison, as that is a programming error.
func NewCompare(test Kind, operand Expression) *Compare {
	if !IsComparison(test) {
		panic(fmt.Sprintf("ir: %v is not a comparison", test))
	}
	return &Compare{Test: test, Operand: operand}
}
