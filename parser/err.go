// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"github.com/ezrec/hrmc/ir"
	"github.com/ezrec/hrmc/lexer"
	"github.com/ezrec/hrmc/translate"
)

var f = translate.From

var (
	ErrNoRule         = translate.Error("no rule matches")
	ErrExpectedOne    = translate.Error("expected exactly one expression")
	ErrPassLimit      = translate.Error("reduction pass limit exceeded")
	ErrLiteralOperand = translate.Error("literal used as an operand")
)

// ErrSyntax holds the lexemes that could not be reduced.
type ErrSyntax struct {
	Tokens []lexer.Lexeme
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("syntax error at '%v': %v", lexer.Join(err.Tokens), err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrCapability is a node used where it lacks a required capability.
type ErrCapability struct {
	Want ir.Capability
	Node ir.Node
}

func (err ErrCapability) Error() string {
	return f("%v is not %v", err.Node, err.Want)
}
