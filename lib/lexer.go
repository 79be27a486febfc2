package lib

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const binaryOperatorChars = "+-/*%"

type charInfo struct {
	ch       rune
	index    int
	location Location
}

// Tokenize scans the whole source and returns its tokens. The last token is
// always the single EOF token.
func Tokenize(source string) ([]Token, error) {
	tokens := []Token{}
	err := lex(source, func(tok Token) {
		tokens = append(tokens, tok)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func lex(source string, emit func(Token)) error {
	l := newLexer(source, emit)
	return l.scan()
}

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	currentLocation  Location
	emitCallback     func(Token)
	upper            cases.Caser
	lower            cases.Caser
}

func newLexer(source string, emit func(Token)) *lexer {
	src := []rune(source)
	return &lexer{
		src:              src,
		length:           len(src),
		currentCharIndex: 0,
		currentLocation:  Location{Line: 1, Col: 1},
		emitCallback:     emit,
		upper:            cases.Upper(language.Und),
		lower:            cases.Lower(language.Und),
	}
}

func (l *lexer) emit(tok Token) {
	l.emitCallback(tok)
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.src[i], index: i, location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	if !ok {
		return info, false
	}
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.Line++
		l.currentLocation.Col = 1
	} else {
		l.currentLocation.Col++
	}
	return info, true
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		l.emit(Token{Type: TokenTypeEOF, Location: l.currentLocation})
		return false, nil
	}
	ch := chInfo.ch

	switch {
	case ch == '(':
		l.emit(Token{Type: TokenTypeOpenParen, Location: chInfo.location})
	case ch == ')':
		l.emit(Token{Type: TokenTypeCloseParen, Location: chInfo.location})
	case strings.ContainsRune(binaryOperatorChars, ch):
		l.emit(Token{Type: TokenTypeBinaryOperator, Value: string(ch), Location: chInfo.location})
	case ch == '=':
		l.emit(Token{Type: TokenTypeEquals, Location: chInfo.location})
	case ch == ';':
		l.emit(Token{Type: TokenTypeSemicolon, Location: chInfo.location})
	case isNumeric(ch):
		l.scanNumber(chInfo)
	case l.isAlpha(ch):
		l.scanWord(chInfo)
	case isSkippable(ch):
		// dropped
	default:
		return false, &LexError{Character: ch, Position: chInfo.index, Location: chInfo.location}
	}

	return true, nil
}

// Reads the rest of a digit run. No sign, decimal point or exponent.
func (l *lexer) scanNumber(first charInfo) {
	for {
		next, ok := l.peek(0)
		if !ok || !isNumeric(next.ch) {
			break
		}
		_, _ = l.advance()
	}

	substr := l.src[first.index:l.currentCharIndex]
	l.emit(Token{Type: TokenTypeNumber, Value: string(substr), Location: first.location})
}

// Reads an identifier run and resolves it against the keyword table. Only an
// exact match is a keyword, so "mutable" stays an identifier.
func (l *lexer) scanWord(first charInfo) {
	for {
		next, ok := l.peek(0)
		if !ok || !(l.isAlpha(next.ch) || isNumeric(next.ch)) {
			break
		}
		_, _ = l.advance()
	}

	word := string(l.src[first.index:l.currentCharIndex])
	if tokType, isKeyword := keywords[word]; isKeyword {
		l.emit(Token{Type: tokType, Location: first.location})
		return
	}
	l.emit(Token{Type: TokenTypeIdentifier, Value: word, Location: first.location})
}

func isNumeric(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// A character counts as alphabetic when its upper and lower case forms
// differ. This is not a Unicode letter test: most scripts without case are
// rejected. Full case mapping is used, so ß (upper "SS") is a letter.
func (l *lexer) isAlpha(ch rune) bool {
	s := string(ch)
	return l.upper.String(s) != l.lower.String(s)
}

func isSkippable(ch rune) bool {
	return ch == ' ' || ch == '\n' || ch == '\t'
}
