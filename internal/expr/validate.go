package expr

import (
	"fmt"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
)

// Validate scans adjacent tokens and rejects structurally illegal
// sequences before conversion is attempted. The first violation wins.
// Parenthesis balance across the whole sequence is not checked here;
// that needs a stack and belongs to ToPostfix.
func Validate(tokens []token.Token) error {
	if len(tokens) == 0 {
		return ErrEmptyExpression
	}

	for i, tok := range tokens {
		switch tok.Type {
		case token.Variable, token.RParen:
			if i+1 >= len(tokens) {
				continue
			}
			next := tokens[i+1]
			if next.Type == token.Variable || next.Type == token.LParen {
				return fmt.Errorf("%w between %q and %q at position %d",
					ErrMissingOperator, tok.Symbol(), next.Symbol(), i)
			}
		case token.LParen:
			// Groups must contain an operand; () is meaningless in this grammar.
			if i+1 < len(tokens) && tokens[i+1].Type == token.RParen {
				return fmt.Errorf("%w: empty group at position %d", ErrIncompleteExpression, i)
			}
		case token.And, token.Or:
			if i == 0 || i == len(tokens)-1 {
				return fmt.Errorf("%w: %q at expression boundary", ErrDanglingOperator, tok.Symbol())
			}
			prev := tokens[i-1]
			if prev.IsOperator() || prev.Type == token.LParen {
				return fmt.Errorf("%w: %q after %q at position %d",
					ErrInvalidOperatorPlacement, tok.Symbol(), prev.Symbol(), i)
			}
		case token.Not:
			if i == len(tokens)-1 {
				return fmt.Errorf("%w: %q at expression end", ErrDanglingOperator, tok.Symbol())
			}
			if tokens[i+1].IsBinary() {
				return fmt.Errorf("%w: %q followed by %q at position %d",
					ErrInvalidOperatorPlacement, tok.Symbol(), tokens[i+1].Symbol(), i)
			}
		}
	}

	return nil
}
