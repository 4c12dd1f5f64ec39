package dto

import (
	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/internal/truthtable"
)

type TableRequest struct {
	Tokens []token.Token `json:"tokens"`
}

// TableRow carries either a result or the taxonomy kind of the failure.
type TableRow struct {
	Assignment map[string]bool `json:"assignment"`
	Result     *bool           `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type TableResponse struct {
	Expression string     `json:"expression"`
	Variables  []string   `json:"variables"`
	Rows       []TableRow `json:"rows"`
}

func NewTableResponse(tokens []token.Token, table truthtable.Table) TableResponse {
	rows := make([]TableRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		out := TableRow{Assignment: row.Assignment}
		if row.Err != nil {
			out.Error = expr.Kind(row.Err)
		} else {
			result := row.Result
			out.Result = &result
		}
		rows = append(rows, out)
	}

	return TableResponse{
		Expression: token.Render(tokens),
		Variables:  table.Variables,
		Rows:       rows,
	}
}
