package workspace

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/google/uuid"
)

// Workspace is one expression-assembly session: the token strip being
// built plus the assignment the result is previewed under.
type Workspace struct {
	ID        uuid.UUID
	Name      string
	Tokens    []token.Token
	Env       expr.Env
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(name string) *Workspace {
	now := time.Now()
	return &Workspace{
		ID:        uuid.New(),
		Name:      name,
		Env:       make(expr.Env),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a token to the end of the strip.
func (w *Workspace) Append(tok token.Token) {
	w.Tokens = append(w.Tokens, tok)
}

// Insert places a token before position i; i == len(Tokens) appends.
func (w *Workspace) Insert(i int, tok token.Token) error {
	if i < 0 || i > len(w.Tokens) {
		return fmt.Errorf("insert position %d out of range [0..%d]", i, len(w.Tokens))
	}
	w.Tokens = append(w.Tokens, token.Token{})
	copy(w.Tokens[i+1:], w.Tokens[i:])
	w.Tokens[i] = tok
	return nil
}

// Remove deletes the token at position i.
func (w *Workspace) Remove(i int) error {
	if i < 0 || i >= len(w.Tokens) {
		return fmt.Errorf("token position %d out of range [0..%d)", i, len(w.Tokens))
	}
	w.Tokens = append(w.Tokens[:i], w.Tokens[i+1:]...)
	return nil
}

// Move relocates one token so it ends up at position to, shifting the
// tokens between. This is a chip drag within the strip.
func (w *Workspace) Move(from, to int) error {
	n := len(w.Tokens)
	if from < 0 || from >= n {
		return fmt.Errorf("move source %d out of range [0..%d)", from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("move target %d out of range [0..%d)", to, n)
	}
	if from == to {
		return nil
	}

	tok := w.Tokens[from]
	w.Tokens = append(w.Tokens[:from], w.Tokens[from+1:]...)
	return w.Insert(to, tok)
}

// Clear drops the whole strip, keeping the assignment.
func (w *Workspace) Clear() {
	w.Tokens = nil
}

// SetVar assigns a free variable. Constants and names outside the
// vocabulary cannot be bound.
func (w *Workspace) SetVar(name string, value bool) error {
	if !token.IsFreeName(name) {
		return fmt.Errorf("%q is not an assignable variable", name)
	}
	if w.Env == nil {
		w.Env = make(expr.Env)
	}
	w.Env[name] = value
	return nil
}

// Evaluate runs the pipeline over the current strip and assignment.
func (w *Workspace) Evaluate() (bool, error) {
	return expr.Evaluate(w.Tokens, w.Env)
}

// Render returns the strip in display syntax.
func (w *Workspace) Render() string {
	return token.Render(w.Tokens)
}

func (w *Workspace) clone() *Workspace {
	cp := *w
	cp.Tokens = append([]token.Token(nil), w.Tokens...)
	cp.Env = make(expr.Env, len(w.Env))
	for k, v := range w.Env {
		cp.Env[k] = v
	}
	return &cp
}
