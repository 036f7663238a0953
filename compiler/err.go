// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"github.com/ezrec/hrmc/translate"
)

var f = translate.From

// Stage is a step of the compilation pipeline.
type Stage int

//go:generate go tool stringer -linecomment -type=Stage
const (
	STAGE_PREPROCESS = Stage(0) // preprocess
	STAGE_LEX        = Stage(1) // lex
	STAGE_PARSE      = Stage(2) // parse
	STAGE_GENERATE   = Stage(3) // generate
)

// ErrStage names the pipeline stage that failed.
type ErrStage struct {
	Stage Stage
	Err   error
}

func (err ErrStage) Error() string {
	return f("%v: %v", err.Stage, err.Err)
}

func (err ErrStage) Unwrap() error {
	return err.Err
}
