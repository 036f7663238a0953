// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hrm

import (
	"github.com/ezrec/hrmc/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrHeaderMissing  = translate.Error("program header missing")
	ErrOpcodeInvalid  = translate.Error("opcode invalid")
	ErrOperandMissing = translate.Error("operand missing")
	ErrOperandExtra   = translate.Error("excessive operands")
	ErrOperandInvalid = translate.Error("operand invalid")
	ErrLabelDuplicate = translate.Error("label duplicated")
	ErrLabelInvalid   = translate.Error("label invalid")
	ErrLabelUnplaced  = translate.Error("label never placed")
)

// ErrLabelMissing names a jump target with no definition.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrSyntax locates an assembler error.
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
