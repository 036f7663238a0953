// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"
	"golang.org/x/text/language"

	"github.com/ezrec/hrmc/compiler"
	"github.com/ezrec/hrmc/emulator"
	"github.com/ezrec/hrmc/hrm"
	"github.com/ezrec/hrmc/translate"
)

// parseFloor parses a floor seed of the form "5=0,6=1".
func parseFloor(text string) (floor map[int]int, err error) {
	floor = map[int]int{}
	if len(text) == 0 {
		return
	}

	for _, item := range strings.Split(text, ",") {
		addr, value, ok := strings.Cut(item, "=")
		if !ok {
			err = fmt.Errorf("%q: expected ADDRESS=VALUE", item)
			return
		}

		var a, v int
		a, err = strconv.Atoi(strings.TrimSpace(addr))
		if err != nil {
			return
		}
		v, err = strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return
		}

		floor[a] = v
	}

	return
}

// open returns the named file, or stdin for "-".
func open(name string) (r io.Reader, err error) {
	if name == "-" {
		r = os.Stdin
		return
	}

	inf, err := os.Open(name)
	if err != nil {
		return
	}
	atexit.Register(func() { inf.Close() })

	r = inf
	return
}

func main() {
	var source string
	var assembled string
	var output string
	var run bool
	var inbox string
	var floor string
	var scratch uint
	var steps int
	var verbose bool
	var lang string

	defines := map[string]string{}

	flag.StringVar(&source, "c", "", ".hrmc file to compile")
	flag.StringVar(&assembled, "a", "", "assembled program to run")
	flag.StringVar(&output, "o", "", "program text output (default stdout, unless running)")
	flag.BoolVar(&run, "r", false, "run the program in the emulator")
	flag.StringVar(&inbox, "i", "-", "inbox input")
	flag.StringVar(&floor, "f", "", "floor seed, as ADDRESS=VALUE[,...]")
	flag.UintVar(&scratch, "s", 0, "scratch address, unless set by #add_square")
	flag.IntVar(&steps, "l", emulator.STEP_LIMIT, "emulator step limit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "message language, as a BCP 47 tag (default from the locale)")
	flag.Func("D", "predefine NAME=VALUE", func(text string) error {
		name, value, ok := strings.Cut(text, "=")
		if !ok {
			return fmt.Errorf("%q: expected NAME=VALUE", text)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			atexit.Fatalf("-lang: %v", err)
		}
		translate.Use(tag)
	}

	if (len(source) == 0) == (len(assembled) == 0) {
		atexit.Fatalf("%v: exactly one of -c or -a is required", os.Args[0])
	}

	if scratch > 255 {
		atexit.Fatalf("%v: scratch address %d is not in 0..255", os.Args[0], scratch)
	}

	var prog *hrm.Program

	if len(source) != 0 {
		inf, err := open(source)
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}

		prog, err = compiler.Compile(inf, compiler.Options{
			Verbose: verbose,
			Scratch: uint8(scratch),
			Define:  defines,
		})
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
	} else {
		inf, err := open(assembled)
		if err != nil {
			atexit.Fatalf("%v: %v", assembled, err)
		}

		asm := &hrm.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", assembled, err)
		}
	}

	switch {
	case output == "-" || (len(output) == 0 && !run):
		_, err := prog.WriteTo(os.Stdout)
		if err != nil {
			atexit.Fatalf("%v", err)
		}
	case len(output) != 0:
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })

		_, err = prog.WriteTo(ouf)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
	}

	if run {
		seed, err := parseFloor(floor)
		if err != nil {
			atexit.Fatalf("-f: %v", err)
		}

		in, err := open(inbox)
		if err != nil {
			atexit.Fatalf("%v: %v", inbox, err)
		}

		emu := emulator.NewEmulator(prog)
		emu.Verbose = verbose
		emu.StepLimit = steps
		emu.Floor = seed
		emu.Conveyor = &emulator.Tape{Input: in, Output: os.Stdout}

		err = emu.Run()
		if err != nil {
			atexit.Fatalf("%v", err)
		}
	}

	atexit.Exit(0)
}
