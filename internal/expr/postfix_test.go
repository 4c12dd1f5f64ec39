package expr

import (
	"errors"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
)

func mustTokens(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := token.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", input, err)
	}
	return tokens
}

func postfixString(tokens []token.Token) string {
	syms := make([]string, len(tokens))
	for i, tok := range tokens {
		syms[i] = tok.Symbol()
	}
	return strings.Join(syms, " ")
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single operand", "A", "A"},
		{"and chain", "A && B", "A B &&"},
		{"equal precedence chains left", "A && B || C", "A B && C ||"},
		{"and binds tighter than or", "A || B && C", "A B C && ||"},
		{"not binds tighter than and", "!A && B", "A ! B &&"},
		{"group overrides precedence", "A && (B || C)", "A B C || &&"},
		{"double negation nests", "!!A", "A ! !"},
		{"negated group", "!(A || B)", "A B || !"},
		{"constants pass through", "TRUE || FALSE", "TRUE FALSE ||"},
		{"redundant group", "(A)", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(mustTokens(t, tt.input))
			if err != nil {
				t.Fatalf("ToPostfix(%q) error = %v", tt.input, err)
			}
			if s := postfixString(got); s != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.input, s, tt.want)
			}
		})
	}
}

func TestToPostfixMismatchedParentheses(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed group", "(A"},
		{"unopened group", "A)"},
		{"nested unclosed group", "((A || B)"},
		{"extra closing paren", "(A && B))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToPostfix(mustTokens(t, tt.input))
			if !errors.Is(err, ErrMismatchedParentheses) {
				t.Fatalf("ToPostfix(%q) error = %v, want %v", tt.input, err, ErrMismatchedParentheses)
			}
		})
	}
}
