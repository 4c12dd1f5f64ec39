package token

import "fmt"

// The vocabulary is closed: three free variables, two boolean constants,
// three operators, and a pair of parentheses. Nothing else tokenizes.

const (
	TrueName  = "TRUE"
	FalseName = "FALSE"
)

// FreeNames lists the variable names in alphabetical order. Constants are
// not free: they never appear in an assignment.
func FreeNames() []string {
	return []string{"A", "B", "C"}
}

// IsFreeName reports whether name is an assignable variable.
func IsFreeName(name string) bool {
	for _, n := range FreeNames() {
		if n == name {
			return true
		}
	}
	return false
}

// ConstantValue resolves TRUE/FALSE operand names. ok is false for
// anything else, including free variables.
func ConstantValue(name string) (value, ok bool) {
	switch name {
	case TrueName:
		return true, true
	case FalseName:
		return false, true
	default:
		return false, false
	}
}

// CheckVocabulary verifies every token belongs to the closed vocabulary.
// Operand names outside {A,B,C,TRUE,FALSE} and unknown token types are
// rejected with their position.
func CheckVocabulary(tokens []Token) error {
	for i, tok := range tokens {
		switch tok.Type {
		case Variable:
			if IsFreeName(tok.Name) {
				continue
			}
			if _, ok := ConstantValue(tok.Name); !ok {
				return fmt.Errorf("unknown operand %q at position %d", tok.Name, i)
			}
		case Not, And, Or, LParen, RParen:
		default:
			return fmt.Errorf("unknown token type at position %d", i)
		}
	}
	return nil
}

// Palette returns the full vocabulary in display order, one token per
// picker entry.
func Palette() []Token {
	return []Token{
		Var("A"),
		Var("B"),
		Var("C"),
		Var(TrueName),
		Var(FalseName),
		{Type: Not},
		{Type: And},
		{Type: Or},
		{Type: LParen},
		{Type: RParen},
	}
}
