package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/pkg/stringsutil"
)

type cliConfig struct {
	Mode      string
	Expr      string
	Vars      string
	SuitePath string
	Output    string
	Warmup    int
	Runs      int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", "eval", "Run mode: eval, table, suite, or repl")
	flag.StringVar(&cfg.Expr, "expr", "", `Boolean expression, e.g. "!(A && B) || C"`)
	flag.StringVar(&cfg.Vars, "vars", "", "Variable assignments, comma-separated, e.g. A=true,B=false")
	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/basics_v1.yaml", "Path to suite YAML (suite mode)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report (suite mode)")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Warmup evaluations per case, overrides the suite's runs block")
	flag.IntVar(&cfg.Runs, "runs", 0, "Measured iterations per case, overrides the suite's runs block")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseVars() (map[string]bool, error) {
	vars := make(map[string]bool)
	if err := parseAssignments(c.Vars, vars); err != nil {
		return nil, err
	}
	return vars, nil
}

// parseAssignments merges NAME=BOOL pairs from a comma-separated list
// into the given map. Names are case-insensitive free variables;
// constants are not assignable.
func parseAssignments(s string, into map[string]bool) error {
	for _, part := range stringsutil.SplitAndTrim(s, ",") {
		name, raw, found := strings.Cut(part, "=")
		if !found {
			return fmt.Errorf("invalid assignment %q, want NAME=BOOL", part)
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		if !token.IsFreeName(name) {
			return fmt.Errorf("unknown variable %q", name)
		}
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
		into[name] = value
	}
	return nil
}
