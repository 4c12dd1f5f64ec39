package expr

import "errors"

// Every stage of the pipeline reports through the same closed set of
// sentinels; callers classify with errors.Is.
var (
	ErrEmptyExpression          = errors.New("empty expression")
	ErrMissingOperator          = errors.New("missing operator")
	ErrDanglingOperator         = errors.New("dangling operator")
	ErrInvalidOperatorPlacement = errors.New("invalid operator placement")
	ErrMismatchedParentheses    = errors.New("mismatched parentheses")
	ErrIncompleteExpression     = errors.New("incomplete expression")
	ErrUnknownOperator          = errors.New("unknown operator")
)

// Kind maps a taxonomy error to its stable wire name. Errors from outside
// the taxonomy map to the empty string.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyExpression):
		return "empty_expression"
	case errors.Is(err, ErrMissingOperator):
		return "missing_operator"
	case errors.Is(err, ErrDanglingOperator):
		return "dangling_operator"
	case errors.Is(err, ErrInvalidOperatorPlacement):
		return "invalid_operator_placement"
	case errors.Is(err, ErrMismatchedParentheses):
		return "mismatched_parentheses"
	case errors.Is(err, ErrIncompleteExpression):
		return "incomplete_expression"
	case errors.Is(err, ErrUnknownOperator):
		return "unknown_operator"
	default:
		return ""
	}
}
