package expr

import (
	"errors"
	"fmt"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits a normalized expression into tokens. Numbers are plain decimal
// digit runs with an optional fractional part; scientific notation is not a
// literal form here because the implicit-multiplication pass would split it
// (write 2*10^3 instead).
func lex(src string) ([]token, error) {
	runes := []rune(src)
	var toks []token

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			i++
		case isDigit(r) || r == '.':
			start := i
			seenDot := false
			for i < len(runes) && (isDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					if seenDot {
						return nil, &Error{Pos: i, Msg: "malformed number"}
					}
					seenDot = true
				}
				i++
			}
			text := string(runes[start:i])
			if text == "." {
				return nil, &Error{Pos: start, Msg: "malformed number"}
			}
			toks = append(toks, token{tokenNumber, text, start})
		case isLetter(r):
			start := i
			for i < len(runes) && isLetter(runes[i]) {
				i++
			}
			toks = append(toks, token{tokenIdent, string(runes[start:i]), start})
		default:
			kind, ok := opKinds[r]
			if !ok {
				return nil, &Error{Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
			}
			toks = append(toks, token{kind, string(r), i})
			i++
		}
	}

	toks = append(toks, token{tokenEOF, "", len(runes)})
	return toks, nil
}

var opKinds = map[rune]tokenKind{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'/': tokenSlash,
	'^': tokenCaret,
	'(': tokenLParen,
	')': tokenRParen,
	',': tokenComma,
}

// Error reports a compile-time problem with an expression: malformed syntax
// or an identifier outside the permitted vocabulary.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("expression error at position %d: %s", e.Pos, e.Msg)
}

// IsCompileError reports whether err originated in compilation rather than
// evaluation.
func IsCompileError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}
