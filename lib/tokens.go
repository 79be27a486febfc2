package lib

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypeIdentifier
	TokenTypeNull
	TokenTypeEquals
	TokenTypeOpenParen
	TokenTypeCloseParen
	TokenTypeBinaryOperator
	TokenTypeSemicolon
	TokenTypeMutable
	TokenTypeImmutable
	TokenTypeEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeNumber:
		return "Number"
	case TokenTypeIdentifier:
		return "Identifier"
	case TokenTypeNull:
		return "Null"
	case TokenTypeEquals:
		return "Equals"
	case TokenTypeOpenParen:
		return "OpenParen"
	case TokenTypeCloseParen:
		return "CloseParen"
	case TokenTypeBinaryOperator:
		return "BinaryOperator"
	case TokenTypeSemicolon:
		return "Semicolon"
	case TokenTypeMutable:
		return "Mutable"
	case TokenTypeImmutable:
		return "Immutable"
	case TokenTypeEOF:
		return "EOF"
	default:
		return "?"
	}
}

var keywords = map[string]TokenType{
	"mut":         TokenTypeMutable,
	"immut":       TokenTypeImmutable,
	"moralmidget": TokenTypeNull,
}

// Location is a 1-based line and column.
type Location struct {
	Line int
	Col  int
}

// Token is one lexical unit. Value holds the lexeme for numbers,
// identifiers and binary operators and is empty for every other type.
type Token struct {
	Type     TokenType
	Value    string
	Location Location
}
