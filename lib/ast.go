package lib

type NodeKind string

const (
	NodeKindProgram        NodeKind = "Program"
	NodeKindNumericLiteral NodeKind = "NumericLiteral"
	NodeKindNullLiteral    NodeKind = "NullLiteral"
	NodeKindIdentifier     NodeKind = "Identifier"
	NodeKindBinaryExpr     NodeKind = "BinaryExpr"
)

type BinaryOp int

const (
	BinaryOpAdd BinaryOp = iota
	BinaryOpSubtract
	BinaryOpDivide
	BinaryOpMultiply
	BinaryOpModulus
)

func (op BinaryOp) String() string {
	switch op {
	case BinaryOpAdd:
		return "+"
	case BinaryOpSubtract:
		return "-"
	case BinaryOpDivide:
		return "/"
	case BinaryOpMultiply:
		return "*"
	case BinaryOpModulus:
		return "%"
	default:
		return "?"
	}
}

func binaryOpFromSymbol(symbol string) (BinaryOp, bool) {
	switch symbol {
	case "+":
		return BinaryOpAdd, true
	case "-":
		return BinaryOpSubtract, true
	case "/":
		return BinaryOpDivide, true
	case "*":
		return BinaryOpMultiply, true
	case "%":
		return BinaryOpModulus, true
	}

	return 0, false
}

type Node interface {
	Kind() NodeKind
}

type Statement interface {
	Node
	isStatement()
}

type Expression interface {
	Statement
	isExpression()
}

func (p Program) Kind() NodeKind        { return NodeKindProgram }
func (n NumericLiteral) Kind() NodeKind { return NodeKindNumericLiteral }
func (n NullLiteral) Kind() NodeKind    { return NodeKindNullLiteral }
func (i Identifier) Kind() NodeKind     { return NodeKindIdentifier }
func (b BinaryExpr) Kind() NodeKind     { return NodeKindBinaryExpr }

func (n NumericLiteral) isStatement() {}
func (n NullLiteral) isStatement()    {}
func (i Identifier) isStatement()     {}
func (b BinaryExpr) isStatement()     {}

func (n NumericLiteral) isExpression() {}
func (n NullLiteral) isExpression()    {}
func (i Identifier) isExpression()     {}
func (b BinaryExpr) isExpression()     {}

// Program is the root of every parse. Body is in evaluation order.
type Program struct {
	Body []Statement
}

type NumericLiteral struct {
	Value float64
}

// NullLiteral is never produced by Parse; it only exists for trees built
// directly.
type NullLiteral struct{}

type Identifier struct {
	Symbol string
}

type BinaryExpr struct {
	Left  Expression
	Right Expression
	Op    BinaryOp
}
