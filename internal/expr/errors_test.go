package expr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrEmptyExpression, "empty_expression"},
		{ErrMissingOperator, "missing_operator"},
		{ErrDanglingOperator, "dangling_operator"},
		{ErrInvalidOperatorPlacement, "invalid_operator_placement"},
		{ErrMismatchedParentheses, "mismatched_parentheses"},
		{ErrIncompleteExpression, "incomplete_expression"},
		{ErrUnknownOperator, "unknown_operator"},
		{fmt.Errorf("context: %w", ErrMissingOperator), "missing_operator"},
		{errors.New("something else"), ""},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
