// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"github.com/ezrec/hrmc/translate"
)

var f = translate.From

// ErrInvalidToken holds the source text no rule could match.
type ErrInvalidToken string

func (err ErrInvalidToken) Error() string {
	return f("invalid token at '%v'", string(err))
}

// ErrNumberRange holds a literal that does not fit in a memory address.
type ErrNumberRange string

func (err ErrNumberRange) Error() string {
	return f("'%v' is not a number in 0..255", string(err))
}
