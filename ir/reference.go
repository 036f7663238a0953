// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ir

import (
	"fmt"

	"github.com/ezrec/hrmc/translate"
)

// ErrNumberInsertion is returned when a dereference or a bump target does
// not resolve to an address.
var ErrNumberInsertion = translate.Error("not an addressable value")

// Mode is the form of a resolved reference.
type Mode int

const (
	REF_NUMBER          = Mode(0) // literal
	REF_POINTER         = Mode(1) // direct
	REF_POINTER_POINTER = Mode(2) // indirect
)

// Reference is a resolved operand.
type Reference struct {
	Mode    Mode
	Address uint8
}

// Literal is a literal number reference.
func Literal(value uint8) Reference {
	return Reference{Mode: REF_NUMBER, Address: value}
}

// Pointer is a direct memory cell reference.
func Pointer(address uint8) Reference {
	return Reference{Mode: REF_POINTER, Address: address}
}

// PointerPointer is a reference through the memory cell at address.
func PointerPointer(address uint8) Reference {
	return Reference{Mode: REF_POINTER_POINTER, Address: address}
}

func (r Reference) String() string {
	switch r.Mode {
	case REF_POINTER:
		return fmt.Sprintf("*%d", r.Address)
	case REF_POINTER_POINTER:
		return fmt.Sprintf("**%d", r.Address)
	default:
		return fmt.Sprintf("%d", r.Address)
	}
}
