package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "symbols",
			input: "!(A && B) || C",
			want: []Token{
				{Type: Not}, {Type: LParen}, Var("A"), {Type: And}, Var("B"), {Type: RParen},
				{Type: Or}, Var("C"),
			},
		},
		{
			name:  "word operators",
			input: "NOT A AND B OR C",
			want:  []Token{{Type: Not}, Var("A"), {Type: And}, Var("B"), {Type: Or}, Var("C")},
		},
		{
			name:  "case insensitive words",
			input: "a and not b",
			want:  []Token{Var("A"), {Type: And}, {Type: Not}, Var("B")},
		},
		{
			name:  "constants",
			input: "true && FALSE",
			want:  []Token{Var(TrueName), {Type: And}, Var(FalseName)},
		},
		{
			name:  "dense symbols",
			input: "!!A&&B",
			want:  []Token{{Type: Not}, {Type: Not}, Var("A"), {Type: And}, Var("B")},
		},
		{
			name:  "surrounding whitespace",
			input: "  A || B  ",
			want:  []Token{Var("A"), {Type: Or}, Var("B")},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeRejectsUnknownInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"word outside vocabulary", "A && D"},
		{"multi letter word", "A && DONE"},
		{"single ampersand", "A & B"},
		{"single pipe", "A | B"},
		{"stray symbol", "A # B"},
		{"trailing single ampersand", "A &"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Tokenize(tt.input); err == nil {
				t.Fatalf("Tokenize(%q) expected error", tt.input)
			}
		})
	}
}
