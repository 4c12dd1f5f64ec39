package dto

import (
	"testing"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/internal/truthtable"
	"github.com/DjordjeVuckovic/logic-hunter/internal/workspace"
)

func TestNewWorkspaceResponse(t *testing.T) {
	ws := workspace.New("demo")

	resp := NewWorkspaceResponse(ws)
	if resp.Result != nil || resp.Error != "" {
		t.Error("empty strip should preview neither result nor error")
	}
	if resp.Tokens == nil {
		t.Error("tokens should marshal as an empty list, not null")
	}

	ws.Append(token.Var("A"))
	ws.Append(token.Token{Type: token.And})
	resp = NewWorkspaceResponse(ws)
	if resp.Result != nil {
		t.Error("malformed strip should not carry a result")
	}
	if resp.Kind != "dangling_operator" {
		t.Errorf("kind = %q, want dangling_operator", resp.Kind)
	}

	ws.Append(token.Var("B"))
	if err := ws.SetVar("A", true); err != nil {
		t.Fatal(err)
	}
	if err := ws.SetVar("B", true); err != nil {
		t.Fatal(err)
	}
	resp = NewWorkspaceResponse(ws)
	if resp.Expression != "A && B" {
		t.Errorf("expression = %q, want %q", resp.Expression, "A && B")
	}
	if resp.Result == nil || !*resp.Result {
		t.Errorf("result = %v, want true", resp.Result)
	}
	if resp.Error != "" || resp.Kind != "" {
		t.Errorf("unexpected error %q kind %q", resp.Error, resp.Kind)
	}
}

func TestNewTableResponse(t *testing.T) {
	tokens := []token.Token{{Type: token.Not}, token.Var("A")}
	resp := NewTableResponse(tokens, truthtable.Build(tokens))

	if resp.Expression != "!A" {
		t.Errorf("expression = %q, want !A", resp.Expression)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(resp.Rows))
	}
	if resp.Rows[0].Result == nil || *resp.Rows[0].Result {
		t.Error("first row is A=true, so !A should be false")
	}
	if resp.Rows[1].Result == nil || !*resp.Rows[1].Result {
		t.Error("second row is A=false, so !A should be true")
	}
}

func TestNewTableResponseSentinelRows(t *testing.T) {
	tokens := []token.Token{token.Var("A"), {Type: token.And}}
	resp := NewTableResponse(tokens, truthtable.Build(tokens))

	if len(resp.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(resp.Rows))
	}
	for i, row := range resp.Rows {
		if row.Result != nil {
			t.Errorf("row %d: sentinel rows carry no result", i)
		}
		if row.Error != "dangling_operator" {
			t.Errorf("row %d error = %q, want dangling_operator", i, row.Error)
		}
	}
}
