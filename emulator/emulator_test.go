package emulator_test

import (
	"bytes"
	"errors"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/hrmc/emulator"
	"github.com/ezrec/hrmc/hrm"
)

func assemble(lines ...string) *hrm.Program {
	asm := &hrm.Assembler{}
	text := hrm.HEADER + "\n\n" + strings.Join(lines, "\n") + "\n"
	prog, err := asm.Parse(strings.NewReader(text))
	Expect(err).NotTo(HaveOccurred())
	return prog
}

var _ = Describe("Emulator", func() {
	var (
		mockCtrl *gomock.Controller
		conveyor *MockConveyor
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		conveyor = NewMockConveyor(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	run := func(emu *emulator.Emulator) error {
		emu.Conveyor = conveyor
		return emu.Run()
	}

	It("should echo the inbox until it is empty", func() {
		emu := emulator.NewEmulator(assemble(
			"aa:",
			"\tINBOX\t",
			"\tOUTBOX\t",
			"\tJUMP\taa",
		))

		gomock.InOrder(
			conveyor.EXPECT().Receive().Return(3, true, nil),
			conveyor.EXPECT().Send(3).Return(nil),
			conveyor.EXPECT().Receive().Return(-4, true, nil),
			conveyor.EXPECT().Send(-4).Return(nil),
			conveyor.EXPECT().Receive().Return(0, false, nil),
		)

		Expect(run(emu)).To(Succeed())
		Expect(emu.Steps).To(Equal(7))
	})

	It("should add and subtract floor tiles", func() {
		emu := emulator.NewEmulator(assemble(
			"\tCOPYFROM\t1",
			"\tSUB\t2",
			"\tOUTBOX\t",
			"\tCOPYFROM\t1",
			"\tADD\t2",
			"\tOUTBOX\t",
		))
		emu.Floor[1] = 5
		emu.Floor[2] = 3

		gomock.InOrder(
			conveyor.EXPECT().Send(2).Return(nil),
			conveyor.EXPECT().Send(8).Return(nil),
		)

		Expect(run(emu)).To(Succeed())
		Expect(emu.Holding).To(BeFalse())
	})

	It("should read and write through pointers", func() {
		emu := emulator.NewEmulator(assemble(
			"\tCOPYFROM\t[0]",
			"\tCOPYTO\t[1]",
			"\tBUMPUP\t[1]",
			"\tOUTBOX\t",
		))
		emu.Floor[0] = 5
		emu.Floor[5] = 7
		emu.Floor[1] = 9

		conveyor.EXPECT().Send(8).Return(nil)

		Expect(run(emu)).To(Succeed())
		Expect(emu.Floor[9]).To(Equal(8))
	})

	It("should bump down and hold the result", func() {
		emu := emulator.NewEmulator(assemble(
			"\tBUMPDN\t4",
			"\tOUTBOX\t",
		))
		emu.Floor[4] = 0

		conveyor.EXPECT().Send(-1).Return(nil)

		Expect(run(emu)).To(Succeed())
		Expect(emu.Floor[4]).To(Equal(-1))
	})

	DescribeTable("runtime errors",
		func(floor map[int]int, expected error, lines []string) {
			emu := emulator.NewEmulator(assemble(lines...))
			for addr, value := range floor {
				emu.Floor[addr] = value
			}

			err := run(emu)
			Expect(err).To(MatchError(expected))

			var runtime *emulator.ErrRuntime
			Expect(errors.As(err, &runtime)).To(BeTrue())
			Expect(runtime.Ip).To(Equal(len(lines) - 1))
		},
		Entry("empty hands", map[int]int{}, emulator.ErrHandsEmpty, []string{"\tOUTBOX\t"}),
		Entry("empty tile", map[int]int{}, emulator.ErrFloorEmpty, []string{"\tCOPYFROM\t3"}),
		Entry("empty pointer", map[int]int{}, emulator.ErrFloorEmpty, []string{"\tCOPYFROM\t[3]"}),
		Entry("pointer out of range", map[int]int{0: 300}, emulator.ErrFloorInvalid, []string{"\tCOPYFROM\t[0]"}),
		Entry("negative pointer", map[int]int{0: -1}, emulator.ErrFloorInvalid, []string{"\tBUMPUP\t[0]"}),
		Entry("overflow", map[int]int{0: 999}, emulator.ErrOverflow, []string{"\tBUMPUP\t0"}),
		Entry("underflow", map[int]int{0: -999, 1: 1}, emulator.ErrOverflow, []string{"\tCOPYFROM\t0", "\tSUB\t1"}),
	)

	It("should stop at the step limit", func() {
		emu := emulator.NewEmulator(assemble(
			"aa:",
			"\tJUMP\taa",
		))
		emu.StepLimit = 10

		err := run(emu)
		Expect(err).To(MatchError(emulator.ErrStepLimit))
		Expect(emu.Steps).To(Equal(10))
	})

	DescribeTable("conditional jumps",
		func(op string, value int, taken bool) {
			emu := emulator.NewEmulator(assemble(
				"\tCOPYFROM\t0",
				"\t"+op+"\taa",
				"\tBUMPUP\t1",
				"aa:",
			))
			emu.Floor[0] = value
			emu.Floor[1] = 0

			Expect(run(emu)).To(Succeed())
			if taken {
				Expect(emu.Floor[1]).To(Equal(0))
			} else {
				Expect(emu.Floor[1]).To(Equal(1))
			}
		},
		Entry("JUMPZ on zero", "JUMPZ", 0, true),
		Entry("JUMPZ on negative", "JUMPZ", -1, false),
		Entry("JUMPZ on positive", "JUMPZ", 1, false),
		Entry("JUMPN on zero", "JUMPN", 0, false),
		Entry("JUMPN on negative", "JUMPN", -1, true),
		Entry("JUMPN on positive", "JUMPN", 1, false),
		Entry("JUMP", "JUMP", 1, true),
	)

	It("should render its state", func() {
		emu := emulator.NewEmulator(&hrm.Program{})
		emu.Floor[2] = 4
		emu.Floor[0] = -1
		Expect(emu.Reset()).To(Succeed())
		Expect(emu.String()).To(Equal("ip=0 steps=0 hands=- [0]=-1 [2]=4"))
	})
})

var _ = Describe("Tape", func() {
	It("should convey whitespace separated integers", func() {
		var out bytes.Buffer
		tape := &emulator.Tape{
			Input:  strings.NewReader(" 1 -2\n\t3\n"),
			Output: &out,
		}

		for _, expected := range []int{1, -2, 3} {
			value, ok, err := tape.Receive()
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(expected))
			Expect(tape.Send(value * 2)).To(Succeed())
		}

		_, ok, err := tape.Receive()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		Expect(out.String()).To(Equal("2\n-4\n6\n"))
	})

	It("should reject malformed values", func() {
		tape := &emulator.Tape{Input: strings.NewReader("x")}
		_, _, err := tape.Receive()
		Expect(err).To(MatchError(emulator.ErrTapeInvalid))

		tape = &emulator.Tape{Input: strings.NewReader("1000")}
		_, _, err = tape.Receive()
		Expect(err).To(MatchError(emulator.ErrOverflow))
	})

	It("should be empty without input", func() {
		tape := &emulator.Tape{}
		_, ok, err := tape.Receive()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(tape.Send(1)).To(Succeed())
	})
})
