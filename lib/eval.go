package lib

import (
	"fmt"
	"math"
)

// Run parses source and evaluates the resulting program.
func Run(source string) (RuntimeValue, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return Evaluate(prog)
}

// Evaluate reduces a node to a value. Identifiers have no bindings to look up
// and always fail with an EvalError.
func Evaluate(node Node) (RuntimeValue, error) {
	switch n := node.(type) {
	case NumericLiteral:
		return NumberValue{Value: n.Value}, nil
	case NullLiteral:
		return NullValue{}, nil
	case BinaryExpr:
		return evalBinaryExpr(n)
	case Program:
		return evalProgram(n)
	case Identifier:
		return nil, &EvalError{NodeKind: string(n.Kind())}
	case nil:
		return nil, &EvalError{NodeKind: "nil"}
	default:
		return nil, &EvalError{NodeKind: fmt.Sprintf("%T", node)}
	}
}

func evalProgram(prog Program) (RuntimeValue, error) {
	var last RuntimeValue = NullValue{}

	for _, stmt := range prog.Body {
		value, err := Evaluate(stmt)
		if err != nil {
			return nil, err
		}
		last = value
	}

	return last, nil
}

// Both sides are always evaluated, left first. Anything other than two
// numbers yields null rather than an error.
func evalBinaryExpr(b BinaryExpr) (RuntimeValue, error) {
	lhs, err := Evaluate(b.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := Evaluate(b.Right)
	if err != nil {
		return nil, err
	}

	l, lok := lhs.(NumberValue)
	r, rok := rhs.(NumberValue)
	if !lok || !rok {
		return NullValue{}, nil
	}

	return evalNumericBinaryExpr(l, r, b.Op)
}

func evalNumericBinaryExpr(lhs NumberValue, rhs NumberValue, op BinaryOp) (RuntimeValue, error) {
	switch op {
	case BinaryOpAdd:
		return NumberValue{Value: lhs.Value + rhs.Value}, nil
	case BinaryOpSubtract:
		return NumberValue{Value: lhs.Value - rhs.Value}, nil
	case BinaryOpDivide:
		return NumberValue{Value: lhs.Value / rhs.Value}, nil
	case BinaryOpMultiply:
		return NumberValue{Value: lhs.Value * rhs.Value}, nil
	case BinaryOpModulus:
		// truncated remainder, sign follows the dividend
		return NumberValue{Value: math.Mod(lhs.Value, rhs.Value)}, nil
	}
	return nil, &EvalError{NodeKind: string(NodeKindBinaryExpr)}
}
