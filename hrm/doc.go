// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package hrm models the one register target machine: its instruction
// set, jump labels, and the text form of a program.
//
// The machine has an implicit accumulator ("hands"), 256 directly
// addressable memory cells ("floor"), an inbox and an outbox. Operands
// are either a direct address (5) or an indirect address ([5]), which
// uses the value in cell 5 as the address.
//
// The Assembler reads the text form back into a Program, so that
// generated programs can be inspected and executed by the emulator.
package hrm
