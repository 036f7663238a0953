// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"github.com/ezrec/hrmc/grammar"
	"github.com/ezrec/hrmc/ir"
	"github.com/ezrec/hrmc/lexer"
)

var (
	is       = grammar.Is
	one      = grammar.One
	many     = grammar.Many
	exactly  = grammar.Exactly
	anything = grammar.Many(grammar.Any().Anywhere())
)

// part returns the lexemes captured by step n of a match.
func part(lexemes []lexer.Lexeme, match grammar.Match, n int) []lexer.Lexeme {
	return match[n].Of(lexemes)
}

// whole returns all the lexemes covered by a match.
func whole(lexemes []lexer.Lexeme, match grammar.Match) []lexer.Lexeme {
	return lexemes[match.Start():match.End()]
}

func inParens() grammar.Step {
	return many(grammar.Any().Nested(grammar.BRACKET_PAREN))
}

func inCurly() grammar.Step {
	return many(grammar.Any().Nested(grammar.BRACKET_CURLY))
}

func buildLoop(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	body, err := r.body(part(lexemes, match, 2))
	if err != nil {
		return
	}

	node = &ir.Loop{Body: body}
	return
}

func buildWhile(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	cond, err := r.logical(part(lexemes, match, 2))
	if err != nil {
		return
	}

	body, err := r.body(part(lexemes, match, 5))
	if err != nil {
		return
	}

	node = &ir.While{Condition: cond, Body: body}
	return
}

func buildIfElse(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	cond, err := r.logical(part(lexemes, match, 2))
	if err != nil {
		return
	}

	then, err := r.body(part(lexemes, match, 5))
	if err != nil {
		return
	}

	otherwise, err := r.body(part(lexemes, match, 9))
	if err != nil {
		return
	}

	node = &ir.IfElse{Condition: cond, Then: then, Else: otherwise}
	return
}

func buildIf(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	cond, err := r.logical(part(lexemes, match, 2))
	if err != nil {
		return
	}

	body, err := r.body(part(lexemes, match, 5))
	if err != nil {
		return
	}

	node = &ir.If{Condition: cond, Body: body}
	return
}

func buildStatement(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	return r.one(part(lexemes, match, 0))
}

// buildComparison creates the builder for a comparison whose operands
// are captured by steps left and right.
func buildComparison(test ir.Kind, left, right int) Builder {
	return func(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
		lhs, err := r.one(part(lexemes, match, left))
		if err != nil {
			return
		}

		rhs, err := r.one(part(lexemes, match, right))
		if err != nil {
			return
		}

		node, err = compare(test, lhs, rhs)
		if err != nil {
			err = &ErrSyntax{Tokens: whole(lexemes, match), Err: err}
		}
		return
	}
}

func buildIncrement(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	target, err := r.value(part(lexemes, match, 0))
	if err != nil {
		return
	}

	node = &ir.Increment{Target: target}
	return
}

func buildDecrement(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	target, err := r.value(part(lexemes, match, 0))
	if err != nil {
		return
	}

	node = &ir.Decrement{Target: target}
	return
}

// buildAssign assigns to the dereference captured by the steps before '='.
func buildAssign(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	eq := len(match) - 2

	target, err := r.value(lexemes[match.Start():match[eq].Start])
	if err != nil {
		return
	}

	source, err := r.expression(part(lexemes, match, eq+1))
	if err != nil {
		return
	}

	node = &ir.Assign{Target: target, Source: source}
	return
}

// buildSum splits the whole match at its top level '+' and '-' lexemes.
func buildSum(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	tokens := whole(lexemes, match)
	depths := grammar.NewDepths(tokens)

	var pos, neg []ir.Expression
	negative := false
	start := 0

	term := func(end int) (err error) {
		e, err := r.expression(tokens[start:end])
		if err != nil {
			return
		}
		if negative {
			neg = append(neg, e)
		} else {
			pos = append(pos, e)
		}
		return
	}

	for n, lx := range tokens {
		if depths.Both[n] != 0 || !(lx.Is(lexer.PLUS) || lx.Is(lexer.MINUS)) {
			continue
		}
		err = term(n)
		if err != nil {
			return
		}
		negative = lx.Is(lexer.MINUS)
		start = n + 1
	}

	err = term(len(tokens))
	if err != nil {
		return
	}

	node = shape(pos, neg)
	return
}

// buildDeref dereferences the lexemes after the leading '*'.
func buildDeref(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	operand, err := r.value(lexemes[match.Start()+1 : match.End()])
	if err != nil {
		return
	}

	node = &ir.Deref{Operand: operand}
	return
}

func buildOutput(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	argument, err := r.expression(part(lexemes, match, 2))
	if err != nil {
		return
	}

	node = &ir.Output{Argument: argument}
	return
}

func buildInput(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	node = &ir.Input{}
	return
}

// buildNumber accepts a literal only at the start of the stream.
func buildNumber(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	if match.Start() != 0 {
		err = &ErrSyntax{Tokens: lexemes, Err: ErrNoRule}
		return
	}

	node = &ir.Number{Value: lexemes[match.Start()].Value}
	return
}

func buildBreak(r *Reducer, lexemes []lexer.Lexeme, match grammar.Match) (node ir.Node, err error) {
	node = &ir.Break{}
	return
}

// StandardClasses returns the precedence classes of the language, first
// class first.
func StandardClasses() []Class {
	comparison := func(name string, test ir.Kind, op ...lexer.Kind) Rule {
		pattern := grammar.Pattern{many(grammar.Skip(op[0]))}
		for _, kind := range op {
			pattern = append(pattern, one(is(kind)))
		}
		pattern = append(pattern, anything)
		return Rule{
			Name:    name,
			Pattern: pattern,
			Build:   buildComparison(test, 0, len(pattern)-1),
		}
	}

	return []Class{
		// Blocks and statements.
		{
			{"loop", grammar.Pattern{
				one(is(lexer.LOOP)),
				one(is(lexer.LBRACE)), inCurly(), one(is(lexer.RBRACE)),
			}, buildLoop},
			{"while", grammar.Pattern{
				one(is(lexer.WHILE)),
				one(is(lexer.LPAREN)), inParens(), one(is(lexer.RPAREN)),
				one(is(lexer.LBRACE)), inCurly(), one(is(lexer.RBRACE)),
			}, buildWhile},
			{"if-else", grammar.Pattern{
				one(is(lexer.IF)),
				one(is(lexer.LPAREN)), inParens(), one(is(lexer.RPAREN)),
				one(is(lexer.LBRACE)), inCurly(), one(is(lexer.RBRACE)),
				one(is(lexer.ELSE)),
				one(is(lexer.LBRACE)), inCurly(), one(is(lexer.RBRACE)),
			}, buildIfElse},
			{"if", grammar.Pattern{
				one(is(lexer.IF)),
				one(is(lexer.LPAREN)), inParens(), one(is(lexer.RPAREN)),
				one(is(lexer.LBRACE)), inCurly(), one(is(lexer.RBRACE)),
			}, buildIf},
			{"statement", grammar.Pattern{
				many(grammar.Not(lexer.SEMICOLON).Anywhere()),
				one(is(lexer.SEMICOLON)),
			}, buildStatement},
		},
		// Comparisons.
		{
			comparison("!=", ir.NOT_ZERO, lexer.BANG, lexer.EQUALS),
			{"==", grammar.Pattern{
				many(grammar.Skip(lexer.EQUALS)),
				exactly(2, is(lexer.EQUALS)),
				anything,
			}, buildComparison(ir.IS_ZERO, 0, 2)},
			comparison("<=", ir.LESS_OR_EQUAL_TO_ZERO, lexer.LESS, lexer.EQUALS),
			comparison(">=", ir.GREATER_OR_EQUAL_TO_ZERO, lexer.GREATER, lexer.EQUALS),
			comparison("<", ir.LESS_THAN_ZERO, lexer.LESS),
			comparison(">", ir.GREATER_THAN_ZERO, lexer.GREATER),
		},
		// Increment and decrement.
		{
			{"++", grammar.Pattern{
				many(grammar.Skip(lexer.PLUS)),
				exactly(2, is(lexer.PLUS)),
			}, buildIncrement},
			{"--", grammar.Pattern{
				many(grammar.Skip(lexer.MINUS)),
				exactly(2, is(lexer.MINUS)),
			}, buildDecrement},
		},
		// Assignment.
		{
			{"**=", grammar.Pattern{
				exactly(2, is(lexer.STAR)),
				one(is(lexer.NUMBER)),
				one(is(lexer.EQUALS)),
				anything,
			}, buildAssign},
			{"*=", grammar.Pattern{
				one(is(lexer.STAR)),
				one(is(lexer.NUMBER)),
				one(is(lexer.EQUALS)),
				anything,
			}, buildAssign},
		},
		// Sums.
		{
			{"+", grammar.Pattern{
				many(grammar.Skip(lexer.PLUS)),
				one(is(lexer.PLUS)),
				anything,
			}, buildSum},
			{"-", grammar.Pattern{
				many(grammar.Skip(lexer.MINUS)),
				one(is(lexer.MINUS)),
				anything,
			}, buildSum},
		},
		// Dereference.
		{
			{"**", grammar.Pattern{
				exactly(2, is(lexer.STAR)),
				one(is(lexer.NUMBER)),
			}, buildDeref},
			{"*", grammar.Pattern{
				one(is(lexer.STAR)),
				one(is(lexer.NUMBER)),
			}, buildDeref},
		},
		// Output.
		{
			{"output", grammar.Pattern{
				one(is(lexer.OUTPUT)),
				one(is(lexer.LPAREN)), inParens(), one(is(lexer.RPAREN)),
			}, buildOutput},
		},
		// Input.
		{
			{"input", grammar.Pattern{
				one(is(lexer.INPUT)),
				one(is(lexer.LPAREN)),
				one(is(lexer.RPAREN)),
			}, buildInput},
		},
		// Literals.
		{
			{"number", grammar.Pattern{one(is(lexer.NUMBER))}, buildNumber},
			{"break", grammar.Pattern{one(is(lexer.BREAK))}, buildBreak},
		},
	}
}
