// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package preprocess

import (
	"github.com/ezrec/hrmc/translate"
)

var f = translate.From

var (
	ErrDirectiveInvalid = translate.Error("directive invalid")
	ErrDefineSyntax     = translate.Error("#define syntax")
	ErrDefineDuplicate  = translate.Error("#define duplicated")
	ErrScratchDuplicate = translate.Error("#add_square duplicated")
	ErrScratchInvalid   = translate.Error("#add_square address invalid")
)

// ErrParseExpression is a $(...) expression that did not evaluate to an integer.
type ErrParseExpression string

func (ep ErrParseExpression) Error() string {
	return f("expression '%v' invalid", string(ep))
}

// ErrSyntax locates a preprocessor error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
