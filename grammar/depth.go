// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package grammar

import (
	"github.com/ezrec/hrmc/lexer"
)

// Depths holds the per-lexeme nesting tables of a stream.
//
// The depth recorded for a lexeme is the nesting level before an opening
// bracket is counted, and after a closing bracket is counted, so a
// matched pair sits at the depth of its surroundings.
type Depths struct {
	Paren []int
	Curly []int
	Both  []int
}

// NewDepths computes the depth tables of a lexeme stream.
func NewDepths(lexemes []lexer.Lexeme) *Depths {
	depths := &Depths{
		Paren: depthTable(lexemes, lexer.LPAREN, lexer.RPAREN),
		Curly: depthTable(lexemes, lexer.LBRACE, lexer.RBRACE),
		Both:  make([]int, len(lexemes)),
	}

	for n := range lexemes {
		depths.Both[n] = depths.Paren[n] + depths.Curly[n]
	}

	return depths
}

// Table selects the depth table for a bracket kind.
func (d *Depths) Table(bracket Bracket) []int {
	switch bracket {
	case BRACKET_PAREN:
		return d.Paren
	case BRACKET_CURLY:
		return d.Curly
	default:
		return d.Both
	}
}

func depthTable(lexemes []lexer.Lexeme, deeper, shallower lexer.Kind) []int {
	table := make([]int, len(lexemes))

	depth := 0
	for n, lx := range lexemes {
		if lx.Kind == shallower {
			depth--
		}
		table[n] = depth
		if lx.Kind == deeper {
			depth++
		}
	}

	return table
}
