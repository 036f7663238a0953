package preprocess

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T, pp *Preprocessor, lines ...string) *Source {
	src, err := pp.Process(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return src
}

func TestEmpty(t *testing.T) {
	assert := assert.New(t)

	src := process(t, &Preprocessor{}, "", "  // nothing", "")
	assert.Equal("", src.Text)
	assert.Equal(uint8(0), src.Scratch)
	assert.False(src.Square)
}

func TestDefine(t *testing.T) {
	assert := assert.New(t)

	pp := &Preprocessor{}
	src := process(t, pp,
		"#define COUNT 5",
		"#define PTR **7",
		"loop {",
		"  PTR = *COUNT; // copy",
		"  output(*COUNTER);",
		"}",
	)

	assert.Equal("loop {\n**7 = *5;\noutput(*COUNTER);\n}", src.Text)
	assert.Equal(map[string]string{"COUNT": "5", "PTR": "**7"}, pp.Define)
}

func TestPredefine(t *testing.T) {
	assert := assert.New(t)

	pp := &Preprocessor{}
	pp.Predefine("N", "3")
	src := process(t, pp, "output(*N);")
	assert.Equal("output(*3);", src.Text)

	_, err := pp.Process(strings.NewReader("#define N 4"))
	assert.ErrorIs(err, ErrDefineDuplicate)
}

func TestParenEval(t *testing.T) {
	assert := assert.New(t)

	pp := &Preprocessor{}
	src := process(t, pp,
		"#define BASE 0x10",
		"*$(BASE + 2) = *$((BASE * 2) - 1);",
		"output(*$(len('abc')));",
	)

	assert.Equal("*18 = *31;\noutput(*3);", src.Text)
}

func TestAddSquare(t *testing.T) {
	assert := assert.New(t)

	src := process(t, &Preprocessor{},
		"#define TEMP 9",
		"#add_square TEMP + 1",
		"*1 = *2 + *3;",
	)
	assert.Equal(uint8(10), src.Scratch)
	assert.True(src.Square)
	assert.Equal("*1 = *2 + *3;", src.Text)

	src = process(t, &Preprocessor{}, "  #add_square 255  ")
	assert.Equal(uint8(255), src.Scratch)
}

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		lines  []string
		lineno int
		err    error
	}{
		{[]string{"#include <stdio.h>"}, 1, ErrDirectiveInvalid},
		{[]string{"", "#define X"}, 2, ErrDefineSyntax},
		{[]string{"#define X 1", "#define X 2"}, 2, ErrDefineDuplicate},
		{[]string{"#add_square 1", "#add_square 2"}, 2, ErrScratchDuplicate},
		{[]string{"", "#add_square 256"}, 2, ErrScratchInvalid},
		{[]string{"#add_square -1"}, 1, ErrScratchInvalid},
		{[]string{"#add_square 'a'"}, 1, ErrParseExpression("'a'")},
		{[]string{"", "", "*$(1 +) = 0;"}, 3, ErrParseExpression("1 +")},
		{[]string{"*$(UNKNOWN) = 0;"}, 1, ErrParseExpression("UNKNOWN")},
	}

	for _, testcase := range table {
		pp := &Preprocessor{}
		_, err := pp.Process(strings.NewReader(strings.Join(testcase.lines, "\n")))
		assert.ErrorIs(err, testcase.err, testcase.lines)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), testcase.lines) {
			assert.Equal(testcase.lineno, syntax.LineNo, testcase.lines)
		}
	}
}

func TestScratchZero(t *testing.T) {
	assert := assert.New(t)

	src := process(t, &Preprocessor{}, "#add_square 0", "*1 = input();")
	assert.Equal(uint8(0), src.Scratch)
	assert.True(src.Square)
}
