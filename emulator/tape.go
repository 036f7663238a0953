// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Conveyor is the inbox and outbox of the machine.
type Conveyor interface {
	// Receive takes the next inbox value. ok is false when the inbox is empty.
	Receive() (value int, ok bool, err error)
	// Send places a value on the outbox.
	Send(value int) error
}

// Tape is a Conveyor over text streams of whitespace separated integers.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Conveyor = (*Tape)(nil)

// Receive reads the next integer from the input stream.
func (tc *Tape) Receive() (value int, ok bool, err error) {
	if tc.Input == nil {
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		return
	}

	word := tc.scanner.Text()
	value, err = strconv.Atoi(word)
	if err != nil {
		err = fmt.Errorf("%w: %q", ErrTapeInvalid, word)
		return
	}

	if !inRange(value) {
		err = ErrOverflow
		return
	}

	ok = true
	return
}

// Send writes a value, one per line, to the output stream.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}
