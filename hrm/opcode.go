// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hrm

import (
	"fmt"
)

// Opcode is a machine instruction type. OP_LABEL marks a label
// definition, and is not an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_INBOX    = Opcode(0)  // INBOX
	OP_OUTBOX   = Opcode(1)  // OUTBOX
	OP_COPYFROM = Opcode(2)  // COPYFROM
	OP_COPYTO   = Opcode(3)  // COPYTO
	OP_ADD      = Opcode(4)  // ADD
	OP_SUB      = Opcode(5)  // SUB
	OP_BUMPUP   = Opcode(6)  // BUMPUP
	OP_BUMPDN   = Opcode(7)  // BUMPDN
	OP_JUMP     = Opcode(8)  // JUMP
	OP_JUMPZ    = Opcode(9)  // JUMPZ
	OP_JUMPN    = Opcode(10) // JUMPN
	OP_LABEL    = Opcode(11) // LABEL
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{}

func init() {
	for op := OP_INBOX; op < OP_LABEL; op++ {
		opcodeMap[op.String()] = op
	}
}

// IsJump reports if the opcode transfers control to a label.
func (op Opcode) IsJump() bool {
	return op == OP_JUMP || op == OP_JUMPZ || op == OP_JUMPN
}

// HasAddress reports if the opcode takes a memory operand.
func (op Opcode) HasAddress() bool {
	return op >= OP_COPYFROM && op <= OP_BUMPDN
}

// LABEL_LIMIT is the number of distinct labels a program may place.
const LABEL_LIMIT = 256

// Label is a jump target. Its Index is assigned when it is placed.
type Label struct {
	Index int
}

// NewLabel creates an unplaced label.
func NewLabel() *Label {
	return &Label{Index: -1}
}

// Placed reports if the label has been given an index.
func (l *Label) Placed() bool {
	return l.Index >= 0
}

// String renders the label name, two letters from a..p.
func (l *Label) String() string {
	if !l.Placed() {
		return "??"
	}
	return LabelName(l.Index)
}

// LabelName renders a label index as two lowercase letters.
func LabelName(index int) string {
	return string([]byte{byte('a' + index/16), byte('a' + index%16)})
}

// ParseLabel converts a two letter label name back into its index.
func ParseLabel(name string) (index int, err error) {
	if len(name) != 2 {
		err = ErrLabelInvalid
		return
	}

	hi, lo := name[0], name[1]
	if hi < 'a' || hi > 'p' || lo < 'a' || lo > 'p' {
		err = ErrLabelInvalid
		return
	}

	index = int(hi-'a')*16 + int(lo-'a')
	return
}

// Instruction is a single machine instruction, or a label definition.
type Instruction struct {
	Op       Opcode
	Address  uint8  // Memory operand.
	Indirect bool   // If set, Address holds the address of the operand.
	Target   *Label // Jump target, or the label placed by OP_LABEL.
}

// MakeInbox creates an INBOX instruction.
func MakeInbox() Instruction {
	return Instruction{Op: OP_INBOX}
}

// MakeOutbox creates an OUTBOX instruction.
func MakeOutbox() Instruction {
	return Instruction{Op: OP_OUTBOX}
}

// MakeMemory creates an instruction with a memory operand.
func MakeMemory(op Opcode, address uint8, indirect bool) Instruction {
	return Instruction{Op: op, Address: address, Indirect: indirect}
}

// MakeJump creates a jump to a label.
func MakeJump(op Opcode, target *Label) Instruction {
	return Instruction{Op: op, Target: target}
}

// MakeLabel creates a label definition.
func MakeLabel(label *Label) Instruction {
	return Instruction{Op: OP_LABEL, Target: label}
}

// Operand renders the operand field of the instruction.
func (in Instruction) Operand() string {
	switch {
	case in.Op.HasAddress() && in.Indirect:
		return fmt.Sprintf("[%d]", in.Address)
	case in.Op.HasAddress():
		return fmt.Sprintf("%d", in.Address)
	case in.Op.IsJump():
		return in.Target.String()
	}
	return ""
}

// String renders the instruction as a line of program text.
func (in Instruction) String() string {
	if in.Op == OP_LABEL {
		return in.Target.String() + ":"
	}
	return "\t" + in.Op.String() + "\t" + in.Operand()
}
