package expr

import (
	"fmt"
	"strconv"
)

// parser is a recursive-descent parser over the closed grammar
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = NUMBER | IDENT | IDENT "(" expr { "," expr } ")" | "(" expr ")"
//
// Power is right-associative and binds tighter than unary minus on its
// right operand, so 2^-3 and -x^2 parse the usual way.
type parser struct {
	toks []token
	pos  int
}

func parse(toks []token) (node, error) {
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, &Error{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
	return root, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return tok, &Error{Pos: tok.pos, Msg: fmt.Sprintf("expected %s", what)}
	}
	return p.next(), nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokenPlus && op != tokenMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, x: left, y: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokenStar && op != tokenSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, x: left, y: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	op := p.peek().kind
	if op == tokenPlus || op == tokenMinus {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryNode{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenCaret {
		return base, nil
	}
	p.next()
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &binaryNode{op: tokenCaret, x: base, y: exponent}, nil
}

func (p *parser) parsePrimary() (node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenNumber:
		p.next()
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &Error{Pos: tok.pos, Msg: "malformed number"}
		}
		return &numNode{value: complex(v, 0)}, nil

	case tokenIdent:
		p.next()
		if p.peek().kind != tokenLParen {
			return &varNode{name: tok.text}, nil
		}
		p.next()
		var args []node
		if p.peek().kind != tokenRParen {
			for {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.peek().kind != tokenComma {
					break
				}
				p.next()
			}
		}
		if _, err := p.expect(tokenRParen, `")"`); err != nil {
			return nil, err
		}
		return &callNode{name: tok.text, args: args}, nil

	case tokenLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil

	case tokenEOF:
		return nil, &Error{Pos: tok.pos, Msg: "unexpected end of expression"}

	default:
		return nil, &Error{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
}
