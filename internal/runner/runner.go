package runner

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/suite"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/internal/truthtable"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = DefaultWarmupRuns
	}
	return &Runner{config: cfg}
}

func (r *Runner) RunSuite(ctx context.Context, s *suite.Suite) (*SuiteResult, error) {
	sr := &SuiteResult{
		SuiteName: s.Name,
		Version:   s.Version,
		Config:    r.config,
	}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("suite %q interrupted: %w", s.Name, err)
		}

		cr := r.runCase(&s.Cases[i])
		if !cr.Pass {
			slog.Warn("case failed", "suite", s.Name, "case", cr.CaseID, "reason", cr.Reason)
		}
		sr.Cases = append(sr.Cases, cr)
	}

	return sr, nil
}

func (r *Runner) runCase(c *suite.Case) CaseResult {
	cr := CaseResult{
		CaseID:      c.ID,
		Description: c.Description,
		Expression:  c.Expression,
	}

	tokens, err := token.Tokenize(c.Expression)
	if err != nil {
		cr.Err = err
		cr.Reason = fmt.Sprintf("tokenize: %v", err)
		return cr
	}

	if len(c.ExpectTable) > 0 {
		r.runTableCase(c, tokens, &cr)
		return cr
	}

	r.runValueCase(c, tokens, &cr)
	return cr
}

func (r *Runner) runValueCase(c *suite.Case, tokens []token.Token, cr *CaseResult) {
	env := expr.Env(c.Vars)

	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = expr.Evaluate(tokens, env)
	}

	var (
		latencies []time.Duration
		result    bool
		err       error
	)
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		result, err = expr.Evaluate(tokens, env)
		latencies = append(latencies, time.Since(start))
	}
	cr.Latency = ComputeLatencyStats(latencies)

	if err != nil {
		cr.Err = err
		cr.ErrorKind = expr.Kind(err)
	} else {
		cr.Result = &result
	}

	switch {
	case c.ExpectError != "":
		if err == nil {
			cr.Reason = fmt.Sprintf("expected error %q, evaluated to %t", c.ExpectError, result)
			return
		}
		if cr.ErrorKind != c.ExpectError {
			cr.Reason = fmt.Sprintf("expected error %q, got %q (%v)", c.ExpectError, cr.ErrorKind, err)
			return
		}
	default:
		if err != nil {
			cr.Reason = fmt.Sprintf("unexpected error: %v", err)
			return
		}
		if result != *c.Expect {
			cr.Reason = fmt.Sprintf("expected %t, evaluated to %t", *c.Expect, result)
			return
		}
	}

	cr.Pass = true
}

func (r *Runner) runTableCase(c *suite.Case, tokens []token.Token, cr *CaseResult) {
	for i := 0; i < r.config.WarmupRuns; i++ {
		truthtable.Build(tokens)
	}

	var (
		latencies []time.Duration
		table     truthtable.Table
	)
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		table = truthtable.Build(tokens)
		latencies = append(latencies, time.Since(start))
	}
	cr.Latency = ComputeLatencyStats(latencies)
	cr.Rows = len(table.Rows)

	pass, reason := judgeTable(c, table)
	cr.Pass = pass
	cr.Reason = reason
}

func judgeTable(c *suite.Case, table truthtable.Table) (bool, string) {
	rows := make(map[string]truthtable.Row, len(table.Rows))
	for _, row := range table.Rows {
		rows[assignmentKey(table.Variables, row.Assignment)] = row
	}

	for i, want := range c.ExpectTable {
		for name := range want.Vars {
			if !slices.Contains(table.Variables, name) {
				return false, fmt.Sprintf("table row %d sets variable %q not present in the expression", i, name)
			}
		}

		key := assignmentKey(table.Variables, want.Vars)
		row, ok := rows[key]
		if !ok {
			return false, fmt.Sprintf("table row %d: no row for assignment %s", i, key)
		}
		if row.Err != nil {
			return false, fmt.Sprintf("table row %d (%s): %v", i, key, row.Err)
		}
		if row.Result != want.Result {
			return false, fmt.Sprintf("table row %d (%s): expected %t, got %t", i, key, want.Result, row.Result)
		}
	}

	return true, ""
}

// assignmentKey renders an assignment over the given variable order;
// variables the map leaves out count as false, matching how the
// evaluator treats unset variables.
func assignmentKey(names []string, assignment map[string]bool) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%t", name, assignment[name])
	}
	return strings.Join(parts, ",")
}
