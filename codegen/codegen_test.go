package codegen

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/hrmc/emulator"
	"github.com/ezrec/hrmc/hrm"
	"github.com/ezrec/hrmc/ir"
	"github.com/ezrec/hrmc/lexer"
	"github.com/ezrec/hrmc/parser"
)

func parse(t *testing.T, source string) []ir.Node {
	lexemes, err := lexer.NewLexer(nil).Lex(source)
	require.NoError(t, err)
	nodes, err := parser.NewReducer(nil).Reduce(lexemes)
	require.NoError(t, err)
	return nodes
}

// body returns the program text after the header.
func body(prog *hrm.Program) []string {
	return slices.Collect(prog.Lines())[2:]
}

func deref(n uint8) *ir.Deref {
	return &ir.Deref{Operand: &ir.Number{Value: n}}
}

func TestGenerateEmpty(t *testing.T) {
	assert := assert.New(t)

	prog, err := NewGenerator(0).Generate(nil)
	assert.NoError(err)
	assert.Empty(prog.Instructions)
	assert.Equal(hrm.HEADER+"\n\n", prog.String())
}

func TestGenerate(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source   string
		expected []string
	}{
		{"if (*1 == 0) { output(*2); }", []string{
			"\tCOPYFROM\t1",
			"\tJUMPZ\taa",
			"\tJUMP\tab",
			"aa:",
			"\tCOPYFROM\t2",
			"\tOUTBOX\t",
			"ab:",
		}},
		{"loop { output(input()); }", []string{
			"aa:",
			"\tINBOX\t",
			"\tOUTBOX\t",
			"\tJUMP\taa",
		}},
		{"*1 = *2 + *3;", []string{
			"\tCOPYFROM\t2",
			"\tCOPYTO\t9",
			"\tCOPYFROM\t3",
			"\tADD\t9",
			"\tCOPYTO\t1",
		}},
		{"*1 = *2 - *3;", []string{
			"\tCOPYFROM\t3",
			"\tCOPYTO\t9",
			"\tCOPYFROM\t2",
			"\tSUB\t9",
			"\tCOPYTO\t1",
		}},
		{"**1 = **2; **1++; *2--;", []string{
			"\tCOPYFROM\t[2]",
			"\tCOPYTO\t[1]",
			"\tBUMPUP\t[1]",
			"\tBUMPDN\t2",
		}},
		{"while (*1 != 0) { *1--; }", []string{
			"aa:",
			"\tCOPYFROM\t1",
			"\tJUMPZ\tab",
			"\tBUMPDN\t1",
			"\tJUMP\taa",
			"ab:",
		}},
		{"loop { if (input() == 0) { break; } }", []string{
			"aa:",
			"\tINBOX\t",
			"\tJUMPZ\tab",
			"\tJUMP\tac",
			"ab:",
			"\tJUMP\tad",
			"ac:",
			"\tJUMP\taa",
			"ad:",
		}},
		{"while (*1 > 0) { break; }", []string{
			"aa:",
			"\tCOPYFROM\t1",
			"\tJUMPZ\tab",
			"\tJUMPN\tab",
			"\tJUMP\tab",
			"\tJUMP\taa",
			"ab:",
		}},
		{"if (*1 < 0) { output(*1); } else { output(*2); }", []string{
			"\tCOPYFROM\t1",
			"\tJUMPN\taa",
			"\tJUMP\tab",
			"aa:",
			"\tCOPYFROM\t1",
			"\tOUTBOX\t",
			"\tJUMP\tac",
			"ab:",
			"\tCOPYFROM\t2",
			"\tOUTBOX\t",
			"ac:",
		}},
	}

	for _, testcase := range table {
		prog, err := NewGenerator(9).Generate(parse(t, testcase.source))
		if assert.NoError(err, testcase.source) {
			assert.Equal(testcase.expected, body(prog), testcase.source)
		}
	}
}

func TestGenerateComparisons(t *testing.T) {
	assert := assert.New(t)

	for _, test := range ir.Comparisons {
		cmp := ir.NewCompare(test, &ir.Input{})
		nodes := []ir.Node{
			&ir.If{Condition: cmp, Body: []ir.Expression{&ir.Output{Argument: deref(1)}}},
		}

		prog, err := NewGenerator(0).Generate(nodes)
		require.NoError(t, err)

		for _, value := range []int{-1, 0, 1} {
			var output bytes.Buffer
			emu := emulator.NewEmulator(prog)
			emu.Floor[1] = 7
			emu.Conveyor = &emulator.Tape{
				Input:  strings.NewReader(fmt.Sprintf("%d", value)),
				Output: &output,
			}

			name := fmt.Sprintf("%v(%d)", test, value)
			if !assert.NoError(emu.Run(), name) {
				continue
			}

			if cmp.Holds(value) {
				assert.Equal("7\n", output.String(), name)
			} else {
				assert.Empty(output.String(), name)
			}
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		nodes []ir.Node
		err   error
	}{
		{"break", []ir.Node{&ir.Break{}}, ErrBreakOutsideLoop},
		{"literal", []ir.Node{&ir.Number{Value: 5}}, ErrInvalidStatement},
		{"add", []ir.Node{
			&ir.Add{Left: deref(1), Right: &ir.Add{Left: deref(2), Right: deref(3)}},
		}, ErrScratchConflict},
		{"subtract", []ir.Node{
			&ir.Subtract{Left: &ir.Subtract{Left: deref(2), Right: deref(3)}, Right: deref(1)},
		}, ErrScratchConflict},
		{"assign", []ir.Node{
			&ir.Add{Left: deref(1), Right: &ir.Assign{
				Target: deref(4),
				Source: &ir.Subtract{Left: deref(2), Right: deref(3)},
			}},
		}, ErrScratchConflict},
		{"bump", []ir.Node{&ir.Increment{Target: &ir.Number{Value: 1}}}, ir.ErrNumberInsertion},
		{"deref", []ir.Node{&ir.Deref{Operand: &ir.Deref{Operand: deref(1)}}}, ir.ErrNumberInsertion},
		{"loop", []ir.Node{&ir.Loop{Body: []ir.Expression{&ir.Break{}}}, &ir.Break{}}, ErrBreakOutsideLoop},
	}

	for _, testcase := range table {
		_, err := NewGenerator(0).Generate(testcase.nodes)
		assert.ErrorIs(err, testcase.err, testcase.name)

		var node *ErrNode
		assert.ErrorAs(err, &node, testcase.name)
	}
}

func TestGenerateLabelLimit(t *testing.T) {
	assert := assert.New(t)

	ifs := func(count int) (nodes []ir.Node) {
		for range count {
			nodes = append(nodes, &ir.If{Condition: ir.NewCompare(ir.NOT_ZERO, &ir.Input{})})
		}
		return
	}

	prog, err := NewGenerator(0).Generate(ifs(hrm.LABEL_LIMIT))
	assert.NoError(err)
	_, err = prog.Targets()
	assert.NoError(err)

	_, err = NewGenerator(0).Generate(ifs(hrm.LABEL_LIMIT + 1))
	assert.ErrorIs(err, ErrLabelOverflow)
}
