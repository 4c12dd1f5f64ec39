package expr

import (
	"fmt"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
)

// Env assigns boolean values to free variables. Missing names read as
// false, so the zero value is the all-false assignment. TRUE and FALSE
// are constants, never looked up here.
type Env map[string]bool

// EvalPostfix runs a value stack over a postfix sequence. Both operands
// of AND/OR are always popped and combined; nothing short-circuits,
// since operands are already-reduced values with no side effects.
func EvalPostfix(postfix []token.Token, env Env) (bool, error) {
	var stack []bool

	for _, tok := range postfix {
		switch tok.Type {
		case token.Variable:
			if v, ok := token.ConstantValue(tok.Name); ok {
				stack = append(stack, v)
				continue
			}
			stack = append(stack, env[tok.Name])
		case token.Not:
			if len(stack) < 1 {
				return false, fmt.Errorf("%w: %q has no operand", ErrIncompleteExpression, tok.Symbol())
			}
			stack[len(stack)-1] = !stack[len(stack)-1]
		case token.And, token.Or:
			if len(stack) < 2 {
				return false, fmt.Errorf("%w: %q is short of operands", ErrIncompleteExpression, tok.Symbol())
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			if tok.Type == token.And {
				stack[len(stack)-1] = a && b
			} else {
				stack[len(stack)-1] = a || b
			}
		default:
			return false, fmt.Errorf("%w: %s", ErrUnknownOperator, tok.Type)
		}
	}

	if len(stack) != 1 {
		return false, fmt.Errorf("%w: %d values left on stack", ErrIncompleteExpression, len(stack))
	}
	return stack[0], nil
}

// Evaluate runs the full pipeline over an infix token sequence: validate,
// convert to postfix, evaluate under env. The first failing stage wins,
// and every failure is one of the package's sentinel errors.
func Evaluate(tokens []token.Token, env Env) (bool, error) {
	if err := Validate(tokens); err != nil {
		return false, err
	}

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return false, err
	}

	return EvalPostfix(postfix, env)
}
