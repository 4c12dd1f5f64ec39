package expr

import (
	"fmt"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
)

const (
	precOr  = 1
	precAnd = 2
	precNot = 3
)

func precedence(t token.Type) int {
	switch t {
	case token.Not:
		return precNot
	case token.And:
		return precAnd
	case token.Or:
		return precOr
	default:
		return 0
	}
}

func rightAssoc(t token.Type) bool {
	return t == token.Not
}

// ToPostfix converts an infix token sequence into postfix order with the
// shunting-yard algorithm. NOT is right-associative so !!A nests instead
// of erroring; AND/OR are left-associative and chain left to right.
// Grouping markers never appear in the output.
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	var stack []token.Token

	for _, tok := range tokens {
		switch tok.Type {
		case token.Variable:
			output = append(output, tok)
		case token.Not, token.And, token.Or:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.IsOperator() {
					break
				}
				if rightAssoc(tok.Type) {
					if precedence(top.Type) <= precedence(tok.Type) {
						break
					}
				} else if precedence(top.Type) < precedence(tok.Type) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case token.LParen:
			stack = append(stack, tok)
		case token.RParen:
			for {
				if len(stack) == 0 {
					return nil, fmt.Errorf("%w: unopened group", ErrMismatchedParentheses)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == token.LParen {
					break
				}
				output = append(output, top)
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, tok.Type)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == token.LParen {
			return nil, fmt.Errorf("%w: unclosed group", ErrMismatchedParentheses)
		}
		output = append(output, top)
	}

	return output, nil
}
