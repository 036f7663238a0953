// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package parser reduces a lexeme stream into IR nodes.
//
// Rules are grouped into precedence classes. Every pass looks for the
// leftmost match of the first class that matches at all, builds the
// node for it, and splices the matched lexemes out of the stream. Passes
// repeat until the stream is empty.
package parser

import (
	"errors"
	"log"
	"slices"

	"github.com/ezrec/hrmc/grammar"
	"github.com/ezrec/hrmc/ir"
	"github.com/ezrec/hrmc/lexer"
)

// Builder creates a node from a match in lexemes.
type Builder func(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (ir.Node, error)

// Rule is a pattern and the builder for its matches.
type Rule struct {
	Name    string
	Pattern grammar.Pattern
	Build   Builder
}

// Class is a group of rules of equal precedence.
type Class []Rule

// Reducer reduces lexeme streams with a fixed set of precedence classes.
type Reducer struct {
	Verbose   bool // If set, logs every reduction.
	PassLimit int  // Maximum reductions per stream; 0 means the stream length.

	classes []Class
}

// NewReducer creates a reducer over precedence classes. A nil list
// selects StandardClasses.
func NewReducer(classes []Class) *Reducer {
	if classes == nil {
		classes = StandardClasses()
	}
	return &Reducer{classes: classes}
}

// earliest finds the leftmost match of a class. Ties go to the rule
// listed first.
func (r *Reducer) earliest(class Class, lexemes []lexer.Lexeme, depths *grammar.Depths) (rule *Rule, match grammar.Match) {
	for n := range class {
		found, ok := class[n].Pattern.FirstIn(lexemes, depths)
		if !ok {
			continue
		}
		if match == nil || found.Start() < match.Start() {
			rule = &class[n]
			match = found
		}
	}

	return
}

// Reduce converts lexemes into nodes, in reduction order.
func (r *Reducer) Reduce(lexemes []lexer.Lexeme) (nodes []ir.Node, err error) {
	current := slices.Clone(lexemes)

	limit := r.PassLimit
	if limit <= 0 {
		limit = len(current)
	}

	for pass := 0; len(current) > 0; pass++ {
		if pass >= limit {
			err = &ErrSyntax{Tokens: current, Err: ErrPassLimit}
			return
		}

		depths := grammar.NewDepths(current)

		var rule *Rule
		var match grammar.Match
		for _, class := range r.classes {
			rule, match = r.earliest(class, current, depths)
			if rule != nil {
				break
			}
		}

		if rule == nil {
			err = &ErrSyntax{Tokens: current, Err: ErrNoRule}
			return
		}

		var node ir.Node
		node, err = rule.Build(r, current, match)
		if err != nil {
			// An empty sub-range has no lexemes of its own to report.
			var syntax *ErrSyntax
			if errors.As(err, &syntax) && len(syntax.Tokens) == 0 {
				syntax.Tokens = current[match.Start():match.End()]
			}
			return
		}

		if r.Verbose {
			log.Printf("parser: %v: '%v' => %v\n", rule.Name, lexer.Join(current[match.Start():match.End()]), node)
		}

		nodes = append(nodes, node)
		current = slices.Delete(current, match.Start(), match.End())
	}

	return
}

// one reduces lexemes that must form exactly one node.
func (r *Reducer) one(lexemes []lexer.Lexeme) (node ir.Node, err error) {
	nodes, err := r.Reduce(lexemes)
	if err != nil {
		return
	}

	if len(nodes) != 1 {
		err = &ErrSyntax{Tokens: lexemes, Err: ErrExpectedOne}
		return
	}

	node = nodes[0]
	return
}

// expression reduces lexemes to a single non-literal Expression.
func (r *Reducer) expression(lexemes []lexer.Lexeme) (e ir.Expression, err error) {
	node, err := r.one(lexemes)
	if err != nil {
		return
	}

	e, err = asExpression(node)
	if err != nil {
		err = &ErrSyntax{Tokens: lexemes, Err: err}
	}
	return
}

// value reduces lexemes to a single Value.
func (r *Reducer) value(lexemes []lexer.Lexeme) (v ir.Value, err error) {
	node, err := r.one(lexemes)
	if err != nil {
		return
	}

	v, ok := ir.AsValue(node)
	if !ok {
		err = &ErrSyntax{Tokens: lexemes, Err: ErrCapability{Want: ir.CAP_VALUE, Node: node}}
	}
	return
}

// logical reduces lexemes to a single Logical.
func (r *Reducer) logical(lexemes []lexer.Lexeme) (l ir.Logical, err error) {
	node, err := r.one(lexemes)
	if err != nil {
		return
	}

	l, ok := ir.AsLogical(node)
	if !ok {
		err = &ErrSyntax{Tokens: lexemes, Err: ErrCapability{Want: ir.CAP_LOGICAL, Node: node}}
	}
	return
}

// Statements reduces a statement list, such as a whole program. Every
// node returned is an Expression.
func (r *Reducer) Statements(lexemes []lexer.Lexeme) (nodes []ir.Node, err error) {
	nodes, err = r.Reduce(lexemes)
	if err != nil {
		return
	}

	for _, node := range nodes {
		if _, ok := ir.AsExpression(node); !ok {
			nodes = nil
			err = &ErrSyntax{Tokens: lexemes, Err: ErrCapability{Want: ir.CAP_EXPRESSION, Node: node}}
			return
		}
	}

	return
}

// body reduces the statement list of a block.
func (r *Reducer) body(lexemes []lexer.Lexeme) (body []ir.Expression, err error) {
	nodes, err := r.Statements(lexemes)
	if err != nil {
		return
	}

	for _, node := range nodes {
		e, _ := ir.AsExpression(node)
		body = append(body, e)
	}

	return
}

// asExpression checks a node is usable as an operand.
func asExpression(node ir.Node) (e ir.Expression, err error) {
	if node.Kind() == ir.NUMBER {
		err = ErrLiteralOperand
		return
	}

	e, ok := ir.AsExpression(node)
	if !ok {
		err = ErrCapability{Want: ir.CAP_EXPRESSION, Node: node}
	}
	return
}
