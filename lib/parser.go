package lib

import (
	"errors"
	"fmt"
	"strconv"
)

// Parse tokenizes source and parses it as one complete program. Each call is
// independent; nothing carries over between calls.
func Parse(source string) (Program, error) {
	buffer := newTokenBuffer()
	err := lex(source, buffer.Write)
	if err != nil {
		return Program{}, err
	}
	buffer.Done()

	p := parser{reader: buffer}
	return p.scan()
}

type parser struct {
	reader tokenReader
}

func (p *parser) scan() (Program, error) {
	body := []Statement{}

	for p.notEOF() {
		stmt, err := p.scanStatement()
		if err != nil {
			return Program{}, err
		}
		body = append(body, stmt)
	}

	return Program{Body: body}, nil
}

func (p *parser) notEOF() bool {
	return p.at().Type != TokenTypeEOF
}

// at returns the current token without consuming it. A drained reader looks
// like EOF.
func (p *parser) at() Token {
	tok, done := p.reader.Peek()
	if done {
		return Token{Type: TokenTypeEOF}
	}
	return tok
}

// Only expression statements exist so far.
func (p *parser) scanStatement() (Statement, error) {
	return p.scanExpr()
}

func (p *parser) scanExpr() (Expression, error) {
	return p.scanAdditive()
}

// Reads "a + b - c ..." folding to the left: ((a + b) - c).
func (p *parser) scanAdditive() (Expression, error) {
	left, err := p.scanMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		op, found := p.checkOperator(BinaryOpAdd, BinaryOpSubtract)
		if !found {
			break
		}
		right, err := p.scanMultiplicative()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Left: left, Right: right, Op: op}
	}

	return left, nil
}

// Reads "a * b / c % d ..." folding to the left.
func (p *parser) scanMultiplicative() (Expression, error) {
	left, err := p.scanPrimary()
	if err != nil {
		return nil, err
	}

	for {
		op, found := p.checkOperator(BinaryOpDivide, BinaryOpMultiply, BinaryOpModulus)
		if !found {
			break
		}
		right, err := p.scanPrimary()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Left: left, Right: right, Op: op}
	}

	return left, nil
}

func (p *parser) scanPrimary() (Expression, error) {
	tok := p.at()

	switch tok.Type {
	case TokenTypeIdentifier:
		p.advance()
		return Identifier{Symbol: tok.Value}, nil
	case TokenTypeNumber:
		p.advance()
		value, err := parseNumber(tok.Value)
		if err != nil {
			return nil, &ParseError{Expected: "number", Found: tok}
		}
		return NumericLiteral{Value: value}, nil
	case TokenTypeOpenParen:
		p.advance()
		expr, err := p.scanExpr()
		if err != nil {
			return nil, err
		}
		_, err = p.requireToken(TokenTypeCloseParen)
		if err != nil {
			return nil, err
		}
		// parentheses only group, they do not become a node
		return expr, nil
	}

	return nil, &ParseError{Expected: "expression", Found: tok}
}

// A digit run too long for a float64 becomes +Inf rather than an error.
func parseNumber(digits string) (float64, error) {
	value, err := strconv.ParseFloat(digits, 64)
	if errors.Is(err, strconv.ErrRange) {
		return value, nil
	}
	return value, err
}

func (p *parser) requireToken(tokType TokenType) (Token, error) {
	next, done := p.reader.Next()
	if done {
		next = Token{Type: TokenTypeEOF}
	}
	if next.Type != tokType {
		return Token{}, &ParseError{
			Expected: tokenValueString(Token{Type: tokType}),
			Found:    next,
		}
	}
	return next, nil
}

func (p *parser) advance() {
	_, _ = p.reader.Next()
}

// checkOperator consumes the current token if it is one of ops.
func (p *parser) checkOperator(ops ...BinaryOp) (BinaryOp, bool) {
	tok := p.at()
	if tok.Type != TokenTypeBinaryOperator {
		return 0, false
	}
	op, ok := binaryOpFromSymbol(tok.Value)
	if !ok {
		return 0, false
	}
	for _, want := range ops {
		if op == want {
			p.advance()
			return op, true
		}
	}
	return 0, false
}

func tokenString(tok Token) string {
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.Location.Line,
		tok.Location.Col,
		tokenValueString(tok))
}

func tokenValueString(tok Token) string {
	switch tok.Type {
	case TokenTypeNumber:
		return fmt.Sprintf("number: %s", tok.Value)
	case TokenTypeIdentifier:
		return fmt.Sprintf("identifier: %s", tok.Value)
	case TokenTypeBinaryOperator:
		return tok.Value
	case TokenTypeNull:
		return "moralmidget"
	case TokenTypeMutable:
		return "mut"
	case TokenTypeImmutable:
		return "immut"
	case TokenTypeEquals:
		return "="
	case TokenTypeOpenParen:
		return "("
	case TokenTypeCloseParen:
		return ")"
	case TokenTypeSemicolon:
		return ";"
	case TokenTypeEOF:
		return "EOF"
	default:
		return "?"
	}
}
