// Package word: parser for the x1*x2^-1 generator notation.
// The grammar is factor ("*" factor)* where factor = xN ["^" [-] int].
// "e" (or the empty string) denotes the identity word.
package word

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// wordAST is the participle grammar root: factors joined by '*'.
type wordAST struct {
	Factors []*factorAST `parser:"@@ ( '*' @@ )*"`
}

// factorAST is one generator with an optional signed exponent.
type factorAST struct {
	Gen string  `parser:"@Ident"`
	Exp *expAST `parser:"( '^' @@ )?"`
}

// expAST is a signed integer exponent (the default lexer emits the minus
// sign as its own token).
type expAST struct {
	Neg bool `parser:"@'-'?"`
	Mag int  `parser:"@Int"`
}

var wordParser = participle.MustBuild[wordAST]()

// Parse reads a word in generator notation. The empty string and "e" parse
// to the identity. Exponent 0 contributes no letters. The result is freely
// reduced.
func Parse(s string) (Word, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "e" {
		return Identity(), nil
	}

	ast, err := wordParser.ParseString("", trimmed)
	if err != nil {
		return nil, ErrWordSyntax
	}

	w := make(Word, 0, len(ast.Factors))
	for _, f := range ast.Factors {
		gen, ok := parseGenerator(f.Gen)
		if !ok {
			return nil, ErrWordSyntax
		}

		exp := 1
		if f.Exp != nil {
			exp = f.Exp.Mag
			if f.Exp.Neg {
				exp = -exp
			}
		}

		letter := gen
		if exp < 0 {
			letter = -gen
			exp = -exp
		}
		for i := 0; i < exp; i++ {
			w = append(w, letter)
		}
	}

	return w.Reduce(), nil
}

// MustParse is Parse that panics on malformed input; for fixtures and tests.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return w
}

// parseGenerator maps "xN" to the one-based generator index N.
func parseGenerator(s string) (int, bool) {
	if len(s) < 2 || s[0] != 'x' {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}
