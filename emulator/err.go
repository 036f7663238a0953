// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/hrmc/translate"
)

var f = translate.From

var (
	ErrHandsEmpty   = translate.Error("hands are empty")
	ErrFloorEmpty   = translate.Error("floor tile is empty")
	ErrFloorInvalid = translate.Error("floor address invalid")
	ErrOverflow     = translate.Error("value out of range")
	ErrStepLimit    = translate.Error("step limit exceeded")
	ErrTapeInvalid  = translate.Error("tape value invalid")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("instruction %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
