package token

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenizer struct {
	input []rune
	pos   int
}

// Tokenize converts display syntax into tokens. Operators may be written
// as symbols (!, &&, ||) or words (NOT, AND, OR); operand names are
// matched case-insensitively. The vocabulary is closed, so any other
// word or symbol is an error.
//
// Example: `(A || b) && !TRUE`
func Tokenize(input string) ([]Token, error) {
	t := &tokenizer{input: []rune(strings.TrimSpace(input))}

	var tokens []Token
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case ch == '(':
			tokens = append(tokens, Token{Type: LParen})
			t.pos++
		case ch == ')':
			tokens = append(tokens, Token{Type: RParen})
			t.pos++
		case ch == '!':
			tokens = append(tokens, Token{Type: Not})
			t.pos++
		case ch == '&' || ch == '|':
			tok, err := t.readSymbolPair(ch)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isWordChar(ch):
			tok, err := t.readWord()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", ch, t.pos)
		}
		t.skipWhitespace()
	}

	return tokens, nil
}

func (t *tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

func (t *tokenizer) readSymbolPair(ch rune) (Token, error) {
	if t.pos+1 >= len(t.input) || t.input[t.pos+1] != ch {
		return Token{}, fmt.Errorf("unexpected character %q at position %d", ch, t.pos)
	}
	t.pos += 2
	if ch == '&' {
		return Token{Type: And}, nil
	}
	return Token{Type: Or}, nil
}

func (t *tokenizer) readWord() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && isWordChar(t.input[t.pos]) {
		t.pos++
	}

	word := string(t.input[start:t.pos])

	switch strings.ToUpper(word) {
	case "AND":
		return Token{Type: And}, nil
	case "OR":
		return Token{Type: Or}, nil
	case "NOT":
		return Token{Type: Not}, nil
	case TrueName:
		return Var(TrueName), nil
	case FalseName:
		return Var(FalseName), nil
	}

	name := strings.ToUpper(word)
	if IsFreeName(name) {
		return Var(name), nil
	}

	return Token{}, fmt.Errorf("unknown word %q at position %d", word, start)
}

func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}
