// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package codegen

import (
	"github.com/ezrec/hrmc/ir"
	"github.com/ezrec/hrmc/translate"
)

var f = translate.From

var (
	ErrInvalidStatement = translate.Error("not a statement")
	ErrBreakOutsideLoop = translate.Error("break outside of a loop")
	ErrScratchConflict  = translate.Error("scratch cell used while holding a value")
	ErrLabelOverflow    = translate.Error("too many labels")
)

// ErrNode names the node that could not be generated.
type ErrNode struct {
	Node ir.Node
	Err  error
}

func (err ErrNode) Error() string {
	return f("%v: %v", err.Node, err.Err)
}

func (err ErrNode) Unwrap() error {
	return err.Err
}
