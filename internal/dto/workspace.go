package dto

import (
	"time"

	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/internal/workspace"
)

type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

// AddTokenRequest appends the token, or inserts it when Index is set.
// The token travels in interchange form: its type tag plus payload.
type AddTokenRequest struct {
	Token token.Token `json:"token"`
	Index *int        `json:"index,omitempty"`
}

type MoveTokenRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type SetVarRequest struct {
	Value bool `json:"value"`
}

// WorkspaceResponse embeds the live evaluation of the strip: Result when
// the expression is well formed, Error plus taxonomy Kind otherwise. A
// workspace with an empty strip previews neither.
type WorkspaceResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name,omitempty"`
	Tokens     []token.Token   `json:"tokens"`
	Expression string          `json:"expression"`
	Vars       map[string]bool `json:"vars"`
	Result     *bool           `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	Kind       string          `json:"kind,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func NewWorkspaceResponse(ws *workspace.Workspace) WorkspaceResponse {
	resp := WorkspaceResponse{
		ID:         ws.ID.String(),
		Name:       ws.Name,
		Tokens:     ws.Tokens,
		Expression: ws.Render(),
		Vars:       ws.Env,
		CreatedAt:  ws.CreatedAt,
		UpdatedAt:  ws.UpdatedAt,
	}
	if resp.Tokens == nil {
		resp.Tokens = []token.Token{}
	}
	if len(ws.Tokens) == 0 {
		return resp
	}

	result, err := ws.Evaluate()
	if err != nil {
		resp.Error = err.Error()
		resp.Kind = expr.Kind(err)
		return resp
	}
	resp.Result = &result
	return resp
}
