package dto

import (
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
)

type PaletteResponse struct {
	Tokens []token.Token `json:"tokens"`
}

type TokenizeRequest struct {
	Expression string `json:"expression" validate:"required,min=1"`
}

type TokenizeResponse struct {
	Tokens []token.Token `json:"tokens"`
}

type EvaluateRequest struct {
	Tokens []token.Token   `json:"tokens"`
	Vars   map[string]bool `json:"vars,omitempty"`
}

type EvaluateResponse struct {
	Expression string `json:"expression"`
	Result     bool   `json:"result"`
}
