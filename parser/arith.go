// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"github.com/ezrec/hrmc/ir"
)

// terms flattens a sum into its positive and negative terms.
func terms(e ir.Expression, negative bool, pos, neg *[]ir.Expression) {
	switch node := e.(type) {
	case *ir.Add:
		terms(node.Left, negative, pos, neg)
		terms(node.Right, negative, pos, neg)
	case *ir.Subtract:
		terms(node.Left, negative, pos, neg)
		terms(node.Right, !negative, pos, neg)
	default:
		if negative {
			*neg = append(*neg, e)
		} else {
			*pos = append(*pos, e)
		}
	}
}

// shape builds sum(pos) - sum(neg). pos must not be empty.
//
// Add(l, r) evaluates l first and Subtract(l, r) evaluates r first; the
// operand evaluated second is always a single term.
func shape(pos, neg []ir.Expression) ir.Expression {
	if len(neg) == 0 {
		sum := pos[0]
		for _, e := range pos[1:] {
			sum = &ir.Add{Left: sum, Right: e}
		}
		return sum
	}

	// a - (sum(neg) - sum(rest))
	return &ir.Subtract{Left: pos[0], Right: shape(neg, pos[1:])}
}

// compare builds the zero test of left against right.
func compare(test ir.Kind, left, right ir.Node) (cmp *ir.Compare, err error) {
	switch {
	case ir.IsLiteralZero(right):
		var operand ir.Expression
		operand, err = asExpression(left)
		if err != nil {
			return
		}
		cmp = ir.NewCompare(test, operand)
		return
	case ir.IsLiteralZero(left):
		var operand ir.Expression
		operand, err = asExpression(right)
		if err != nil {
			return
		}
		cmp = ir.NewCompare(ir.Mirror(test), operand)
		return
	}

	lhs, err := asExpression(left)
	if err != nil {
		return
	}

	rhs, err := asExpression(right)
	if err != nil {
		return
	}

	// The leftmost term of lhs is always positive.
	var pos, neg []ir.Expression
	terms(lhs, false, &pos, &neg)
	terms(rhs, true, &pos, &neg)

	cmp = ir.NewCompare(test, shape(pos, neg))
	return
}
