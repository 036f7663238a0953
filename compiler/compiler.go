// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package compiler runs the full pipeline from source text to a machine
// program: preprocess, lex, reduce and generate.
package compiler

import (
	"io"
	"log"

	"github.com/ezrec/hrmc/codegen"
	"github.com/ezrec/hrmc/hrm"
	"github.com/ezrec/hrmc/lexer"
	"github.com/ezrec/hrmc/parser"
	"github.com/ezrec/hrmc/preprocess"
)

// Options configures a compilation. The zero value is ready to use.
type Options struct {
	Verbose   bool              // If set, every stage logs verbosely.
	PassLimit int               // Reducer pass limit; 0 means the token count.
	Scratch   uint8             // Scratch address, unless the source selects one with #add_square.
	Define    map[string]string // Defines in effect before the source is read.
}

// Compile translates source text into a program.
func Compile(input io.Reader, opts Options) (prog *hrm.Program, err error) {
	stage := STAGE_PREPROCESS
	defer func() {
		if err != nil {
			prog = nil
			err = &ErrStage{Stage: stage, Err: err}
		}
	}()

	pp := &preprocess.Preprocessor{Verbose: opts.Verbose}
	for name, value := range opts.Define {
		pp.Predefine(name, value)
	}

	src, err := pp.Process(input)
	if err != nil {
		return
	}

	stage = STAGE_LEX
	lx := lexer.NewLexer(nil)
	lx.Verbose = opts.Verbose

	lexemes, err := lx.Lex(src.Text)
	if err != nil {
		return
	}

	stage = STAGE_PARSE
	reducer := parser.NewReducer(nil)
	reducer.Verbose = opts.Verbose
	reducer.PassLimit = opts.PassLimit

	nodes, err := reducer.Statements(lexemes)
	if err != nil {
		return
	}

	stage = STAGE_GENERATE
	scratch := opts.Scratch
	if src.Square {
		if scratch != 0 && scratch != src.Scratch {
			log.Printf("compiler: #add_square %d overrides scratch %d\n", src.Scratch, scratch)
		}
		scratch = src.Scratch
	}

	gen := codegen.NewGenerator(scratch)
	gen.Verbose = opts.Verbose

	prog, err = gen.Generate(nodes)
	if err != nil {
		return
	}

	if opts.Verbose {
		log.Printf("compiler: %d instructions, scratch %d\n", prog.Size(), scratch)
	}

	return
}
