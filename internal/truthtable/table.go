package truthtable

import (
	"sort"

	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
)

// Row pairs one assignment of the free variables with the evaluation
// outcome. Err is set instead of Result when the pipeline failed, so an
// invalid expression still yields a full table of sentinel rows.
type Row struct {
	Assignment expr.Env
	Result     bool
	Err        error
}

// Table is the enumeration result. Variables fixes the column order.
type Table struct {
	Variables []string
	Rows      []Row
}

// Variables returns the distinct free variables occurring in the
// sequence, in alphabetical order. Constants are not free and never
// appear in an assignment.
func Variables(tokens []token.Token) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, tok := range tokens {
		if tok.Type != token.Variable {
			continue
		}
		if _, isConst := token.ConstantValue(tok.Name); isConst {
			continue
		}
		if _, ok := seen[tok.Name]; ok {
			continue
		}
		seen[tok.Name] = struct{}{}
		names = append(names, tok.Name)
	}

	sort.Strings(names)
	return names
}

// Build enumerates every assignment of the expression's free variables,
// running the full pipeline once per row. Bit n-1-i of the mask drives
// variable i, and masks count down, so rows run from all-true to
// all-false. No free variables means an empty table.
func Build(tokens []token.Token) Table {
	vars := Variables(tokens)
	n := len(vars)
	if n == 0 {
		return Table{Variables: vars}
	}

	rows := make([]Row, 0, 1<<n)
	for mask := (1 << n) - 1; mask >= 0; mask-- {
		env := make(expr.Env, n)
		for i, name := range vars {
			env[name] = mask&(1<<(n-1-i)) != 0
		}

		row := Row{Assignment: env}
		result, err := expr.Evaluate(tokens, env)
		if err != nil {
			row.Err = err
		} else {
			row.Result = result
		}
		rows = append(rows, row)
	}

	return Table{Variables: vars, Rows: rows}
}
