// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerEmpty(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexer(nil)

	lexemes, err := lx.Lex("")
	assert.NoError(err)
	assert.Empty(lexemes)

	lexemes, err = lx.Lex(" \t\n ")
	assert.NoError(err)
	assert.Empty(lexemes)
}

func TestLexerTokens(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source   string
		expected []Lexeme
	}{
		{"input()", []Lexeme{Token(INPUT), Token(LPAREN), Token(RPAREN)}},
		{"output(*5);", []Lexeme{
			Token(OUTPUT), Token(LPAREN), Token(STAR), Number(5), Token(RPAREN), Token(SEMICOLON)}},
		{"**12 = *3 + *4;", []Lexeme{
			Token(STAR), Token(STAR), Number(12), Token(EQUALS),
			Token(STAR), Number(3), Token(PLUS), Token(STAR), Number(4), Token(SEMICOLON)}},
		{"loop { break; }", []Lexeme{
			Token(LOOP), Token(LBRACE), Token(BREAK), Token(SEMICOLON), Token(RBRACE)}},
		{"while(*1>=0){*1--;}", []Lexeme{
			Token(WHILE), Token(LPAREN), Token(STAR), Number(1), Token(GREATER), Token(EQUALS),
			Number(0), Token(RPAREN), Token(LBRACE), Token(STAR), Number(1), Token(MINUS),
			Token(MINUS), Token(SEMICOLON), Token(RBRACE)}},
		{"if (*1 != *2) {} else {}", []Lexeme{
			Token(IF), Token(LPAREN), Token(STAR), Number(1), Token(BANG), Token(EQUALS),
			Token(STAR), Number(2), Token(RPAREN), Token(LBRACE), Token(RBRACE),
			Token(ELSE), Token(LBRACE), Token(RBRACE)}},
		{"0 255 007", []Lexeme{Number(0), Number(255), Number(7)}},
		{"<<>", []Lexeme{Token(LESS), Token(LESS), Token(GREATER)}},
	}

	lx := NewLexer(nil)
	for _, testcase := range table {
		lexemes, err := lx.Lex(testcase.source)
		assert.NoError(err, testcase.source)
		assert.Equal(testcase.expected, lexemes, testcase.source)
	}
}

func TestLexerInvalid(t *testing.T) {
	assert := assert.New(t)

	lx := NewLexer(nil)

	_, err := lx.Lex("*1 = x;")
	var invalid ErrInvalidToken
	assert.True(errors.As(err, &invalid))
	assert.Equal("x;", string(invalid))

	_, err = lx.Lex("*256 = 1;")
	var number ErrNumberRange
	assert.True(errors.As(err, &number))
	assert.Equal("256", string(number))
}

func TestLexerRuleOrder(t *testing.T) {
	assert := assert.New(t)

	// A table with a catch-all ahead of the keyword shadows the keyword.
	rules := StandardRules()
	shadow := append([]Rule{{Pattern: rules[12].Pattern, Kind: BANG}}, rules...)
	lx := NewLexer(shadow)

	lexemes, err := lx.Lex("if")
	assert.NoError(err)
	assert.Equal([]Lexeme{Token(BANG)}, lexemes)
}

func TestLexemeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("42", Number(42).String())
	assert.Equal("while", Token(WHILE).String())
	assert.Equal("Kind(99)", Kind(99).String())
	assert.Equal("* 1 = input ( )", Join([]Lexeme{
		Token(STAR), Number(1), Token(EQUALS), Token(INPUT), Token(LPAREN), Token(RPAREN)}))
}

func FuzzLexer(f *testing.F) {
	f.Add("*1 = input();")
	f.Add("while (*1 > 0) { *1--; }")
	f.Add("output(**3)")

	lx := NewLexer(nil)

	f.Fuzz(func(t *testing.T, source string) {
		lexemes, err := lx.Lex(source)
		if err != nil {
			var invalid ErrInvalidToken
			var number ErrNumberRange
			if !errors.As(err, &invalid) && !errors.As(err, &number) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			if errors.As(err, &invalid) && !strings.HasSuffix(source, string(invalid)) {
				t.Fatalf("remainder %q is not a suffix of %q", string(invalid), source)
			}
			return
		}

		// Relexing the rendered form is stable.
		again, err := lx.Lex(Join(lexemes))
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(lexemes) {
			t.Fatalf("relex %v != %v", again, lexemes)
		}
	})
}
