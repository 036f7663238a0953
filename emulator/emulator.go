// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/hrmc/hrm"
)

const (
	VALUE_MIN  = -999  // Smallest value a tile can hold.
	VALUE_MAX  = 999   // Largest value a tile can hold.
	FLOOR_SIZE = 256   // Number of addressable floor tiles.
	STEP_LIMIT = 10000 // Default limit on executed instructions.
)

func inRange(value int) bool {
	return value >= VALUE_MIN && value <= VALUE_MAX
}

// Emulator runs a machine program against a conveyor.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	Program   *hrm.Program // Program to run.
	Conveyor  Conveyor     // Inbox and outbox.
	Floor     map[int]int  // Floor tiles by address. Missing tiles are empty.
	StepLimit int          // Maximum instructions executed; 0 means STEP_LIMIT.

	Hands   int  // Value held by the worker.
	Holding bool // If set, Hands holds a value.
	Ip      int  // Index of the next instruction.
	Steps   int  // Executed instructions since Reset.

	targets map[*hrm.Label]int
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *hrm.Program) (emu *Emulator) {
	emu = &Emulator{
		Program:  prog,
		Conveyor: &Tape{},
		Floor:    map[int]int{},
	}

	return
}

// Reset prepares the emulator to run from the first instruction.
// The floor is left untouched so it can be seeded beforehand.
func (emu *Emulator) Reset() (err error) {
	emu.Ip = 0
	emu.Steps = 0
	emu.Hands = 0
	emu.Holding = false

	if emu.Floor == nil {
		emu.Floor = map[int]int{}
	}

	emu.targets, err = emu.Program.Targets()
	return
}

// String renders the machine state.
func (emu *Emulator) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "ip=%d steps=%d hands=", emu.Ip, emu.Steps)
	if emu.Holding {
		fmt.Fprintf(&sb, "%d", emu.Hands)
	} else {
		sb.WriteString("-")
	}

	for _, addr := range slices.Sorted(maps.Keys(emu.Floor)) {
		fmt.Fprintf(&sb, " [%d]=%d", addr, emu.Floor[addr])
	}

	return sb.String()
}

// address resolves the floor address of a memory operand.
func (emu *Emulator) address(in hrm.Instruction) (addr int, err error) {
	addr = int(in.Address)
	if !in.Indirect {
		return
	}

	addr, ok := emu.Floor[addr]
	if !ok {
		err = ErrFloorEmpty
		return
	}

	if addr < 0 || addr >= FLOOR_SIZE {
		err = ErrFloorInvalid
		return
	}

	return
}

// load reads the floor tile named by a memory operand.
func (emu *Emulator) load(in hrm.Instruction) (addr int, value int, err error) {
	addr, err = emu.address(in)
	if err != nil {
		return
	}

	value, ok := emu.Floor[addr]
	if !ok {
		err = ErrFloorEmpty
		return
	}

	return
}

// hands returns the held value.
func (emu *Emulator) hands() (value int, err error) {
	if !emu.Holding {
		err = ErrHandsEmpty
		return
	}

	value = emu.Hands
	return
}

// hold places a value into the hands.
func (emu *Emulator) hold(value int) (err error) {
	if !inRange(value) {
		err = ErrOverflow
		return
	}

	emu.Hands = value
	emu.Holding = true
	return
}

// jump transfers control to a label.
func (emu *Emulator) jump(label *hrm.Label) {
	emu.Ip = emu.targets[label]
}

// Tick executes a single instruction. done is set once the program
// has run off its end, or INBOX found the inbox empty.
func (emu *Emulator) Tick() (done bool, err error) {
	prog := emu.Program.Instructions

	// Labels are not instructions.
	for emu.Ip < len(prog) && prog[emu.Ip].Op == hrm.OP_LABEL {
		emu.Ip++
	}

	if emu.Ip >= len(prog) {
		done = true
		return
	}

	ip := emu.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	limit := emu.StepLimit
	if limit <= 0 {
		limit = STEP_LIMIT
	}
	if emu.Steps >= limit {
		err = ErrStepLimit
		return
	}
	emu.Steps++

	in := prog[ip]
	if emu.Verbose {
		log.Printf("emulator: %v: %v\n", ip, strings.TrimSpace(in.String()))
	}

	emu.Ip++

	switch in.Op {
	case hrm.OP_INBOX:
		var value int
		var ok bool
		value, ok, err = emu.Conveyor.Receive()
		if err != nil {
			return
		}
		if !ok {
			done = true
			return
		}
		err = emu.hold(value)
	case hrm.OP_OUTBOX:
		var value int
		value, err = emu.hands()
		if err != nil {
			return
		}
		err = emu.Conveyor.Send(value)
		emu.Holding = false
	case hrm.OP_COPYFROM:
		var value int
		_, value, err = emu.load(in)
		if err != nil {
			return
		}
		err = emu.hold(value)
	case hrm.OP_COPYTO:
		var value, addr int
		value, err = emu.hands()
		if err != nil {
			return
		}
		addr, err = emu.address(in)
		if err != nil {
			return
		}
		emu.Floor[addr] = value
	case hrm.OP_ADD, hrm.OP_SUB:
		var held, value int
		held, err = emu.hands()
		if err != nil {
			return
		}
		_, value, err = emu.load(in)
		if err != nil {
			return
		}
		if in.Op == hrm.OP_SUB {
			value = -value
		}
		err = emu.hold(held + value)
	case hrm.OP_BUMPUP, hrm.OP_BUMPDN:
		var addr, value int
		addr, value, err = emu.load(in)
		if err != nil {
			return
		}
		if in.Op == hrm.OP_BUMPUP {
			value++
		} else {
			value--
		}
		err = emu.hold(value)
		if err != nil {
			return
		}
		emu.Floor[addr] = value
	case hrm.OP_JUMP:
		emu.jump(in.Target)
	case hrm.OP_JUMPZ, hrm.OP_JUMPN:
		var value int
		value, err = emu.hands()
		if err != nil {
			return
		}
		if (in.Op == hrm.OP_JUMPZ && value == 0) || (in.Op == hrm.OP_JUMPN && value < 0) {
			emu.jump(in.Target)
		}
	default:
		err = hrm.ErrOpcodeInvalid
	}

	return
}

// Run executes the program until it is done, or fails.
func (emu *Emulator) Run() (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %v\n", emu)
	}

	return
}
