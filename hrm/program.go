// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hrm

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/hrmc/internal"
)

// HEADER is the first line of every program text.
const HEADER = "-- HUMAN RESOURCE MACHINE PROGRAM --"

// Program is an instruction sequence, including label definitions.
type Program struct {
	Instructions []Instruction
}

// Size returns the number of executable instructions.
func (prog *Program) Size() (size int) {
	for _, in := range prog.Instructions {
		if in.Op != OP_LABEL {
			size++
		}
	}
	return
}

// Lines returns the program text, one line at a time, without newlines.
func (prog *Program) Lines() iter.Seq[string] {
	header := slices.Values([]string{HEADER, ""})
	body := func(yield func(string) bool) {
		for _, in := range prog.Instructions {
			if !yield(in.String()) {
				return
			}
		}
	}

	return internal.IterSeqConcat(header, body)
}

// String returns the full program text.
func (prog *Program) String() string {
	var sb strings.Builder
	for line := range prog.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the program text.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	written, err := io.WriteString(w, prog.String())
	n = int64(written)
	return
}

// Targets maps every placed label to the index of its definition.
func (prog *Program) Targets() (targets map[*Label]int, err error) {
	targets = make(map[*Label]int, 16)

	for n, in := range prog.Instructions {
		if in.Op != OP_LABEL {
			continue
		}
		if !in.Target.Placed() {
			err = ErrLabelUnplaced
			return
		}
		if _, ok := targets[in.Target]; ok {
			err = ErrLabelDuplicate
			return
		}
		targets[in.Target] = n
	}

	for _, in := range prog.Instructions {
		if !in.Op.IsJump() {
			continue
		}
		if _, ok := targets[in.Target]; !ok {
			err = ErrLabelMissing(in.Target.String())
			return
		}
	}

	return
}
