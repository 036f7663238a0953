// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package ir defines the intermediate representation produced by the
// parser and consumed by the code generator.
//
// Every node has a Kind, and exposes any combination of three
// capabilities:
//
//   - Expression: emits instructions as a statement, possibly leaving a
//     value in the accumulator.
//   - Value: resolves to a memory Reference.
//   - Logical: emits a branch to a label taken when the condition is false.
//
// The set of node types is closed; AsExpression, AsValue and AsLogical
// are the capability queries.
package ir

import (
	"fmt"
	"strings"
)

// Kind identifies a concrete node type.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	NUMBER                   = Kind(0)  // Number
	DEREF                    = Kind(1)  // Deref
	ADD                      = Kind(2)  // Add
	SUBTRACT                 = Kind(3)  // Subtract
	ASSIGN                   = Kind(4)  // Assign
	OUTPUT                   = Kind(5)  // Output
	INPUT                    = Kind(6)  // Input
	LOOP                     = Kind(7)  // Loop
	WHILE                    = Kind(8)  // While
	IF                       = Kind(9)  // If
	IF_ELSE                  = Kind(10) // IfElse
	INCREMENT                = Kind(11) // Increment
	DECREMENT                = Kind(12) // Decrement
	BREAK                    = Kind(13) // Break
	IS_ZERO                  = Kind(14) // IsZero
	NOT_ZERO                 = Kind(15) // NotZero
	GREATER_THAN_ZERO        = Kind(16) // GreaterThanZero
	LESS_THAN_ZERO           = Kind(17) // LessThanZero
	GREATER_OR_EQUAL_TO_ZERO = Kind(18) // GreaterOrEqualToZero
	LESS_OR_EQUAL_TO_ZERO    = Kind(19) // LessOrEqualToZero
)

// Capability is a set of node roles.
type Capability uint8

const (
	CAP_EXPRESSION = Capability(1 << 0)
	CAP_VALUE      = Capability(1 << 1)
	CAP_LOGICAL    = Capability(1 << 2)
)

func (c Capability) String() string {
	var names []string
	if c&CAP_EXPRESSION != 0 {
		names = append(names, "expression")
	}
	if c&CAP_VALUE != 0 {
		names = append(names, "value")
	}
	if c&CAP_LOGICAL != 0 {
		names = append(names, "logical")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Node is any IR node.
type Node interface {
	Kind() Kind
	fmt.Stringer
}

// Expression is a node that can be emitted as a statement.
type Expression interface {
	Node
	expression()
}

// Value is a node that resolves to a memory reference.
type Value interface {
	Node
	Reference() (Reference, error)
}

// Logical is a node that emits a conditional branch.
type Logical interface {
	Node
	logical()
}

// AsExpression queries the Expression capability.
func AsExpression(n Node) (e Expression, ok bool) {
	e, ok = n.(Expression)
	return
}

// AsValue queries the Value capability.
func AsValue(n Node) (v Value, ok bool) {
	v, ok = n.(Value)
	return
}

// AsLogical queries the Logical capability.
func AsLogical(n Node) (l Logical, ok bool) {
	l, ok = n.(Logical)
	return
}

// Capabilities returns every capability a node advertises.
func Capabilities(n Node) (caps Capability) {
	if _, ok := AsExpression(n); ok {
		caps |= CAP_EXPRESSION
	}
	if _, ok := AsValue(n); ok {
		caps |= CAP_VALUE
	}
	if _, ok := AsLogical(n); ok {
		caps |= CAP_LOGICAL
	}
	return
}

// listString renders a statement list.
func listString(body []Expression) string {
	words := make([]string, len(body))
	for n, e := range body {
		words[n] = e.String()
	}
	return "[" + strings.Join(words, " ") + "]"
}
