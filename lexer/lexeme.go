// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"fmt"
	"strings"
)

// Kind is the type of a lexeme.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	INPUT     = Kind(0)  // input
	OUTPUT    = Kind(1)  // output
	LPAREN    = Kind(2)  // (
	RPAREN    = Kind(3)  // )
	PLUS      = Kind(4)  // +
	EQUALS    = Kind(5)  // =
	LOOP      = Kind(6)  // loop
	LBRACE    = Kind(7)  // {
	RBRACE    = Kind(8)  // }
	STAR      = Kind(9)  // *
	SEMICOLON = Kind(10) // ;
	NUMBER    = Kind(11) // number
	IF        = Kind(12) // if
	BANG      = Kind(13) // !
	MINUS     = Kind(14) // -
	LESS      = Kind(15) // <
	GREATER   = Kind(16) // >
	ELSE      = Kind(17) // else
	WHILE     = Kind(18) // while
	BREAK     = Kind(19) // break
)

// Lexeme is a single token. Value is only meaningful for NUMBER.
type Lexeme struct {
	Kind  Kind
	Value uint8
}

// Token returns the lexeme of a fixed-form kind.
func Token(kind Kind) Lexeme {
	return Lexeme{Kind: kind}
}

// Number returns a NUMBER lexeme.
func Number(value uint8) Lexeme {
	return Lexeme{Kind: NUMBER, Value: value}
}

// Is reports if the lexeme is of the given kind.
func (lx Lexeme) Is(kind Kind) bool {
	return lx.Kind == kind
}

// String returns the source form of the lexeme.
func (lx Lexeme) String() string {
	if lx.Kind == NUMBER {
		return fmt.Sprintf("%d", lx.Value)
	}
	return lx.Kind.String()
}

// Join renders a lexeme sequence as space separated source text.
func Join(lexemes []Lexeme) string {
	words := make([]string, len(lexemes))
	for n, lx := range lexemes {
		words[n] = lx.String()
	}
	return strings.Join(words, " ")
}
