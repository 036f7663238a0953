// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package lexer converts preprocessed source text into lexemes.
package lexer

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Rule maps a pattern anchored at the scan position to a lexeme kind.
type Rule struct {
	Pattern *regexp.Regexp
	Kind    Kind
}

// StandardRules returns the rule table of the language.
//
// Rules are tried in order and the first match wins, so keywords that
// share a prefix with a later rule must come first.
func StandardRules() []Rule {
	table := []struct {
		expr string
		kind Kind
	}{
		{`input`, INPUT},
		{`output`, OUTPUT},
		{`\(`, LPAREN},
		{`\)`, RPAREN},
		{`\+`, PLUS},
		{`=`, EQUALS},
		{`loop`, LOOP},
		{`\{`, LBRACE},
		{`\}`, RBRACE},
		{`\*`, STAR},
		{`\d+`, NUMBER},
		{`;`, SEMICOLON},
		{`if`, IF},
		{`!`, BANG},
		{`-`, MINUS},
		{`<`, LESS},
		{`>`, GREATER},
		{`else`, ELSE},
		{`while`, WHILE},
		{`break`, BREAK},
	}

	rules := make([]Rule, len(table))
	for n, entry := range table {
		rules[n] = Rule{
			Pattern: regexp.MustCompile(`^(?:` + entry.expr + `)`),
			Kind:    entry.kind,
		}
	}

	return rules
}

// Lexer tokenizes source text with a fixed rule table.
type Lexer struct {
	Verbose bool // If set, logs every lexeme produced.

	rules []Rule
}

// NewLexer creates a lexer over a rule table. A nil table selects
// StandardRules.
func NewLexer(rules []Rule) *Lexer {
	if rules == nil {
		rules = StandardRules()
	}
	return &Lexer{rules: rules}
}

// Lex converts the entire source into lexemes.
func (lx *Lexer) Lex(source string) (lexemes []Lexeme, err error) {
	rest := strings.TrimLeftFunc(source, unicode.IsSpace)

	for len(rest) > 0 {
		var lexeme Lexeme
		var size int
		lexeme, size, err = lx.next(rest)
		if err != nil {
			return nil, err
		}

		if lx.Verbose {
			log.Printf("lexer: %v", lexeme)
		}

		lexemes = append(lexemes, lexeme)
		rest = strings.TrimLeftFunc(rest[size:], unicode.IsSpace)
	}

	return
}

// next matches the first rule at the start of text.
func (lx *Lexer) next(text string) (lexeme Lexeme, size int, err error) {
	for _, rule := range lx.rules {
		word := rule.Pattern.FindString(text)
		if len(word) == 0 {
			continue
		}

		size = len(word)
		lexeme = Token(rule.Kind)
		if rule.Kind == NUMBER {
			var value uint64
			value, err = strconv.ParseUint(word, 10, 8)
			if err != nil {
				err = ErrNumberRange(word)
				return
			}
			lexeme.Value = uint8(value)
		}
		return
	}

	err = ErrInvalidToken(text)
	return
}
