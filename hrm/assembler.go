// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hrm

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Assembler reads program text back into a Program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	label map[string]*Label // Map of label names to labels.
}

// labelOf returns the label for a name, creating it if needed.
func (asm *Assembler) labelOf(name string) (label *Label, err error) {
	label, ok := asm.label[name]
	if ok {
		return
	}

	index, err := ParseLabel(name)
	if err != nil {
		return
	}

	label = &Label{Index: index}
	asm.label[name] = label
	return
}

// parseOperand parses a memory operand, `5` or `[5]`.
func parseOperand(word string) (address uint8, indirect bool, err error) {
	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
		indirect = true
		word = word[1 : len(word)-1]
	}

	value, err := strconv.ParseUint(word, 10, 8)
	if err != nil {
		err = ErrOperandInvalid
		return
	}

	address = uint8(value)
	return
}

// parseWords converts the words of a single line into an instruction.
func (asm *Assembler) parseWords(words []string, placed map[*Label]bool) (in Instruction, err error) {
	if len(words) == 1 && strings.HasSuffix(words[0], ":") {
		var label *Label
		label, err = asm.labelOf(strings.TrimSuffix(words[0], ":"))
		if err != nil {
			return
		}
		if placed[label] {
			err = ErrLabelDuplicate
			return
		}
		placed[label] = true
		in = MakeLabel(label)
		return
	}

	op, ok := opcodeMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	switch {
	case op == OP_INBOX || op == OP_OUTBOX:
		if len(args) != 0 {
			err = ErrOperandExtra
			return
		}
		in = Instruction{Op: op}
		return
	case len(args) == 0:
		err = ErrOperandMissing
		return
	case len(args) > 1:
		err = ErrOperandExtra
		return
	}

	if op.IsJump() {
		var label *Label
		label, err = asm.labelOf(args[0])
		if err != nil {
			return
		}
		in = MakeJump(op, label)
		return
	}

	address, indirect, err := parseOperand(args[0])
	if err != nil {
		return
	}

	in = MakeMemory(op, address, indirect)
	return
}

// Parse parses program text into a Program.
// Game annotations (COMMENT lines and DEFINE blocks) are skipped.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.label = make(map[string]*Label, 16)
	placed := make(map[*Label]bool, 16)

	prog = &Program{}
	header := false
	define := false

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("hrm: %v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		if !header {
			if line != HEADER {
				err = ErrHeaderMissing
				return
			}
			header = true
			continue
		}

		if define {
			define = !strings.HasSuffix(line, ";")
			continue
		}

		switch words[0] {
		case "COMMENT":
			continue
		case "DEFINE":
			define = true
			continue
		}

		var in Instruction
		in, err = asm.parseWords(words, placed)
		if err != nil {
			return
		}
		prog.Instructions = append(prog.Instructions, in)
	}

	if err = scanner.Err(); err != nil {
		return
	}

	if !header {
		err = ErrHeaderMissing
		return
	}

	// Final linking of jump labels.
	line = ""
	for _, in := range prog.Instructions {
		if in.Op.IsJump() && !placed[in.Target] {
			err = ErrLabelMissing(in.Target.String())
			return
		}
	}

	return
}
