package expr

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []token.Token
		wantErr error
	}{
		{
			name:    "empty sequence",
			tokens:  nil,
			wantErr: ErrEmptyExpression,
		},
		{
			name:   "single variable",
			tokens: []token.Token{token.Var("A")},
		},
		{
			name:   "binary chain",
			tokens: []token.Token{token.Var("A"), {Type: token.And}, token.Var("B")},
		},
		{
			name:   "negated variable",
			tokens: []token.Token{{Type: token.Not}, token.Var("A")},
		},
		{
			name:   "stacked negation",
			tokens: []token.Token{{Type: token.Not}, {Type: token.Not}, token.Var("A")},
		},
		{
			name: "grouped subexpression",
			tokens: []token.Token{
				{Type: token.LParen}, token.Var("A"), {Type: token.Or}, token.Var("B"), {Type: token.RParen},
				{Type: token.And}, token.Var("C"),
			},
		},
		{
			name:   "unclosed paren passes the scan",
			tokens: []token.Token{{Type: token.LParen}, token.Var("A")},
		},
		{
			name:   "unary before closing paren passes the scan",
			tokens: []token.Token{{Type: token.LParen}, {Type: token.Not}, {Type: token.RParen}},
		},
		{
			name:    "adjacent variables",
			tokens:  []token.Token{token.Var("A"), token.Var("B")},
			wantErr: ErrMissingOperator,
		},
		{
			name:    "variable then open paren",
			tokens:  []token.Token{token.Var("A"), {Type: token.LParen}, token.Var("B"), {Type: token.RParen}},
			wantErr: ErrMissingOperator,
		},
		{
			name: "adjacent groups",
			tokens: []token.Token{
				{Type: token.LParen}, token.Var("A"), {Type: token.RParen},
				{Type: token.LParen}, token.Var("B"), {Type: token.RParen},
			},
			wantErr: ErrMissingOperator,
		},
		{
			name:    "binary operator leads",
			tokens:  []token.Token{{Type: token.And}, token.Var("A")},
			wantErr: ErrDanglingOperator,
		},
		{
			name:    "binary operator trails",
			tokens:  []token.Token{token.Var("A"), {Type: token.And}},
			wantErr: ErrDanglingOperator,
		},
		{
			name:    "unary operator trails",
			tokens:  []token.Token{token.Var("A"), {Type: token.And}, {Type: token.Not}},
			wantErr: ErrDanglingOperator,
		},
		{
			name:    "lone unary operator",
			tokens:  []token.Token{{Type: token.Not}},
			wantErr: ErrDanglingOperator,
		},
		{
			name:    "stacked binary operators",
			tokens:  []token.Token{token.Var("A"), {Type: token.And}, {Type: token.Or}, token.Var("B")},
			wantErr: ErrInvalidOperatorPlacement,
		},
		{
			name:    "binary operator after open paren",
			tokens:  []token.Token{{Type: token.LParen}, {Type: token.And}, token.Var("A"), {Type: token.RParen}},
			wantErr: ErrInvalidOperatorPlacement,
		},
		{
			name:    "not followed by binary operator",
			tokens:  []token.Token{{Type: token.Not}, {Type: token.Or}, token.Var("A")},
			wantErr: ErrInvalidOperatorPlacement,
		},
		{
			name:    "empty group",
			tokens:  []token.Token{{Type: token.LParen}, {Type: token.RParen}},
			wantErr: ErrIncompleteExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tokens)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
