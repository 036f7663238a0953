// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package grammar finds token sequence patterns in a lexeme stream,
// respecting bracket nesting.
//
// A Pattern is an ordered list of Steps. Each Step accepts either an
// exact number of lexemes, or as many consecutive lexemes as its
// Matcher accepts (possibly none). Every Matcher also constrains the
// nesting depth at which a lexeme may be accepted.
package grammar

import (
	"github.com/ezrec/hrmc/lexer"
)

// Criteria constrains the depth at which a matcher accepts a lexeme.
type Criteria int

const (
	DEPTH_ZERO   = Criteria(0) // depth == 0
	DEPTH_NESTED = Criteria(1) // depth >= 1
	DEPTH_ANY    = Criteria(2) // any depth
	DEPTH_OUTER  = Criteria(3) // depth == 0, nested lexemes always accepted
)

// Bracket selects which depth table a matcher consults.
type Bracket int

const (
	BRACKET_BOTH  = Bracket(0) // ( ) and { } combined
	BRACKET_PAREN = Bracket(1) // ( )
	BRACKET_CURLY = Bracket(2) // { }
)

// GREEDY as a Step count accepts as many lexemes as match.
const GREEDY = -1

// Matcher is a predicate over a single lexeme at a given depth.
type Matcher struct {
	Accept  func(lexer.Lexeme) bool
	Depth   Criteria
	Bracket Bracket
}

// Is matches a single kind at top level.
func Is(kind lexer.Kind) Matcher {
	return Matcher{Accept: func(lx lexer.Lexeme) bool { return lx.Kind == kind }}
}

// Not matches anything but kind at top level.
func Not(kind lexer.Kind) Matcher {
	return Matcher{Accept: func(lx lexer.Lexeme) bool { return lx.Kind != kind }}
}

// Skip matches anything but kind at top level, and every nested lexeme.
func Skip(kind lexer.Kind) Matcher {
	return Not(kind).Outer()
}

// Any matches every lexeme at top level.
func Any() Matcher {
	return Matcher{Accept: func(lexer.Lexeme) bool { return true }}
}

// Nested returns the matcher restricted to depth >= 1 of bracket.
func (m Matcher) Nested(bracket Bracket) Matcher {
	m.Depth = DEPTH_NESTED
	m.Bracket = bracket
	return m
}

// Anywhere returns the matcher with the depth constraint removed.
func (m Matcher) Anywhere() Matcher {
	m.Depth = DEPTH_ANY
	return m
}

// Outer returns the matcher applied only at top level, with every nested
// lexeme accepted.
func (m Matcher) Outer() Matcher {
	m.Depth = DEPTH_OUTER
	return m
}

// Matches tests a lexeme at a depth.
func (m Matcher) Matches(lx lexer.Lexeme, depth int) bool {
	if m.Depth == DEPTH_OUTER && depth != 0 {
		return true
	}

	if !m.Accept(lx) {
		return false
	}

	switch m.Depth {
	case DEPTH_ZERO:
		return depth == 0
	case DEPTH_NESTED:
		return depth >= 1
	default:
		return true
	}
}

// Step is a matcher with a quantity. Count is an exact count, or GREEDY.
type Step struct {
	Matcher
	Count int
}

// One is a step matching exactly one lexeme.
func One(m Matcher) Step {
	return Step{Matcher: m, Count: 1}
}

// Exactly is a step matching count lexemes.
func Exactly(count int, m Matcher) Step {
	return Step{Matcher: m, Count: count}
}

// Many is a greedy step.
func Many(m Matcher) Step {
	return Step{Matcher: m, Count: GREEDY}
}

// Span is a half open range of lexeme indexes.
type Span struct {
	Start int
	End   int
}

// Len is the number of lexemes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Of returns the lexemes covered by the span.
func (s Span) Of(lexemes []lexer.Lexeme) []lexer.Lexeme {
	return lexemes[s.Start:s.End]
}

// Match holds the span captured by each step of a pattern.
type Match []Span

// Start is the first lexeme index of the match.
func (m Match) Start() int {
	return m[0].Start
}

// End is one past the last lexeme index of the match.
func (m Match) End() int {
	return m[len(m)-1].End
}

// Pattern is an ordered list of steps.
type Pattern []Step

// Matches reports every start offset, left to right, at which the whole
// pattern succeeds.
func (p Pattern) Matches(lexemes []lexer.Lexeme) (matches []Match) {
	depths := NewDepths(lexemes)

	for start := range lexemes {
		match, ok := p.matchAt(lexemes, depths, start)
		if ok {
			matches = append(matches, match)
		}
	}

	return
}

// First reports the leftmost match of the pattern.
func (p Pattern) First(lexemes []lexer.Lexeme) (match Match, ok bool) {
	return p.FirstIn(lexemes, NewDepths(lexemes))
}

// FirstIn reports the leftmost match using precomputed depth tables.
func (p Pattern) FirstIn(lexemes []lexer.Lexeme, depths *Depths) (match Match, ok bool) {
	for start := range lexemes {
		match, ok = p.matchAt(lexemes, depths, start)
		if ok {
			return
		}
	}

	return nil, false
}

// matchAt attempts the pattern at a single offset.
func (p Pattern) matchAt(lexemes []lexer.Lexeme, depths *Depths, start int) (match Match, ok bool) {
	if len(p) == 0 {
		return nil, false
	}

	match = make(Match, 0, len(p))
	ptr := start

	for _, step := range p {
		table := depths.Table(step.Bracket)
		begin := ptr

		if step.Count == GREEDY {
			for ptr < len(lexemes) && step.Matches(lexemes[ptr], table[ptr]) {
				ptr++
			}
		} else {
			if ptr+step.Count > len(lexemes) {
				return nil, false
			}
			for ; ptr < begin+step.Count; ptr++ {
				if !step.Matches(lexemes[ptr], table[ptr]) {
					return nil, false
				}
			}
		}

		match = append(match, Span{Start: begin, End: ptr})
	}

	return match, true
}
