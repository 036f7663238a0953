// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package preprocess prepares source text for the lexer.
//
// Line comments (`// ...`) are removed, `#define NAME VALUE` substitutes
// VALUE for every whole word NAME, `$(EXPR)` is replaced by the integer
// value of a starlark expression, and `#add_square EXPR` reserves the
// scratch address used by arithmetic.
package preprocess

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	reComment = regexp.MustCompile(`//.*`)
	reDefine  = regexp.MustCompile(`^#define\s+(\w+)\s+([\w*]+)$`)
	reSquare  = regexp.MustCompile(`^#add_square\s+(.+)$`)
	reParen   = regexp.MustCompile(`\$\(([^()]*(?:\([^()]*\)[^()]*)*)\)`)
	reWord    = regexp.MustCompile(`\w+`)
)

// Source is preprocessed program text.
type Source struct {
	Text    string // Trimmed source, free of comments and directives.
	Scratch uint8  // Scratch address, 0 unless set by #add_square.
	Square  bool   // Set if #add_square selected Scratch.
}

// Preprocessor expands directives in program text.
type Preprocessor struct {
	Verbose bool              // If set, verbosely logs the preprocessor actions.
	Define  map[string]string // Defines in effect after Process.

	predefine map[string]string
}

// Predefine adds a define that is in effect before the source is read.
func (pp *Preprocessor) Predefine(name string, value string) {
	if pp.predefine == nil {
		pp.predefine = map[string]string{name: value}
	} else {
		pp.predefine[name] = value
	}
}

// substitute replaces defined words.
func (pp *Preprocessor) substitute(line string) string {
	if len(pp.Define) == 0 {
		return line
	}

	return reWord.ReplaceAllStringFunc(line, func(word string) string {
		value, ok := pp.Define[word]
		if ok {
			return value
		}
		return word
	})
}

// parenEval does $(...) evaluations.
func (pp *Preprocessor) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range pp.Define {
		v64, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Non-integer defines are not visible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// expand performs define substitution and $(...) evaluation on a line.
func (pp *Preprocessor) expand(line string) (expanded string, err error) {
	expanded = reParen.ReplaceAllStringFunc(pp.substitute(line), func(str string) string {
		value, _err := pp.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// directive handles a single # line.
func (pp *Preprocessor) directive(line string, square *string) (err error) {
	if words := reDefine.FindStringSubmatch(line); words != nil {
		name, value := words[1], words[2]
		if _, ok := pp.Define[name]; ok {
			err = ErrDefineDuplicate
			return
		}
		if pp.Verbose {
			log.Printf("preprocess: define %v = %v\n", name, value)
		}
		pp.Define[name] = value
		return
	}

	if strings.HasPrefix(line, "#define") {
		err = ErrDefineSyntax
		return
	}

	if words := reSquare.FindStringSubmatch(line); words != nil {
		if *square != "" {
			err = ErrScratchDuplicate
			return
		}
		*square = strings.TrimSpace(words[1])
		return
	}

	err = ErrDirectiveInvalid
	return
}

// Process reads program text and expands its directives.
func (pp *Preprocessor) Process(input io.Reader) (src *Source, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	pp.Define = maps.Clone(pp.predefine)
	if pp.Define == nil {
		pp.Define = map[string]string{}
	}

	var lines []string
	var square string
	var square_lineno int

	// Directives apply to the whole text, so are gathered first.
	for scanner.Scan() {
		lineno += 1
		line = scanner.Text()

		text := strings.TrimSpace(reComment.ReplaceAllString(line, ""))
		if strings.HasPrefix(text, "#") {
			err = pp.directive(text, &square)
			if err != nil {
				return
			}
			if square != "" && square_lineno == 0 {
				square_lineno = lineno
			}
			text = ""
		}

		lines = append(lines, text)
	}

	if err = scanner.Err(); err != nil {
		return
	}

	src = &Source{}

	for n, text := range lines {
		lineno = n + 1
		line = text
		lines[n], err = pp.expand(text)
		if err != nil {
			return
		}
	}

	if square != "" {
		lineno = square_lineno
		line = square

		var expr string
		expr, err = pp.expand(square)
		if err != nil {
			return
		}

		var value int64
		value, err = pp.parenEval(expr)
		if err != nil {
			return
		}
		if value < 0 || value > 255 {
			err = ErrScratchInvalid
			return
		}
		src.Scratch = uint8(value)
		src.Square = true

		if pp.Verbose {
			log.Printf("preprocess: scratch %v\n", src.Scratch)
		}
	}

	src.Text = strings.TrimSpace(strings.Join(lines, "\n"))

	return
}
