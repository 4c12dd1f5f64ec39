package token

import (
	"fmt"
	"strings"
)

type Type int

const (
	Variable Type = iota
	Not
	And
	Or
	LParen
	RParen
)

func (t Type) String() string {
	switch t {
	case Variable:
		return "VARIABLE"
	case Not:
		return "NOT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case LParen:
		return "LPAREN"
	case RParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// ParseType reads the wire name of a token type (case-insensitive).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "variable":
		return Variable, nil
	case "not":
		return Not, nil
	case "and":
		return And, nil
	case "or":
		return Or, nil
	case "lparen":
		return LParen, nil
	case "rparen":
		return RParen, nil
	default:
		return 0, fmt.Errorf("invalid token type: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler for JSON serialization.
func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case Variable:
		return []byte("variable"), nil
	case Not:
		return []byte("not"), nil
	case And:
		return []byte("and"), nil
	case Or:
		return []byte("or"), nil
	case LParen:
		return []byte("lparen"), nil
	case RParen:
		return []byte("rparen"), nil
	default:
		return nil, fmt.Errorf("invalid token type: %d", int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization.
func (t *Type) UnmarshalText(text []byte) error {
	typ, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = typ
	return nil
}

// Token is one element of an expression. Name is set only for Variable
// tokens and holds an operand name from the vocabulary.
type Token struct {
	Type Type   `json:"type"`
	Name string `json:"name,omitempty"`
}

// Var builds a Variable token for the given operand name.
func Var(name string) Token {
	return Token{Type: Variable, Name: name}
}

// Symbol returns the display form of the token.
func (t Token) Symbol() string {
	switch t.Type {
	case Variable:
		return t.Name
	case Not:
		return "!"
	case And:
		return "&&"
	case Or:
		return "||"
	case LParen:
		return "("
	case RParen:
		return ")"
	default:
		return "?"
	}
}

// IsOperand reports whether the token occupies an operand slot.
func (t Token) IsOperand() bool {
	return t.Type == Variable
}

// IsBinary reports whether the token is a binary operator.
func (t Token) IsBinary() bool {
	return t.Type == And || t.Type == Or
}

// IsOperator reports whether the token is any operator.
func (t Token) IsOperator() bool {
	return t.Type == Not || t.Type == And || t.Type == Or
}

// Render joins tokens into the display syntax. Operators and operands are
// space-separated; NOT and opening parens hug the term that follows them.
func Render(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && needsSpace(tokens[i-1], tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Symbol())
	}
	return b.String()
}

func needsSpace(prev, cur Token) bool {
	if prev.Type == Not || prev.Type == LParen {
		return false
	}
	if cur.Type == RParen {
		return false
	}
	return true
}
