package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/report"
	"github.com/DjordjeVuckovic/logic-hunter/internal/runner"
	"github.com/DjordjeVuckovic/logic-hunter/internal/suite"
	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"github.com/DjordjeVuckovic/logic-hunter/internal/truthtable"
	"github.com/mattn/go-isatty"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	switch cfg.Mode {
	case "eval":
		runEval(cfg)
	case "table":
		runTable(cfg)
	case "suite":
		runSuite(ctx, cfg)
	case "repl":
		runRepl(cfg)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func runEval(cfg cliConfig) {
	if cfg.Expr == "" {
		slog.Error("Eval mode requires -expr")
		os.Exit(1)
	}

	vars, err := cfg.parseVars()
	if err != nil {
		slog.Error("Invalid -vars", "error", err)
		os.Exit(1)
	}

	tokens, err := token.Tokenize(cfg.Expr)
	if err != nil {
		slog.Error("Tokenize failed", "error", err)
		os.Exit(1)
	}

	result, err := expr.Evaluate(tokens, expr.Env(vars))
	if err != nil {
		slog.Error("Evaluation failed", "error", err, "kind", expr.Kind(err))
		os.Exit(1)
	}

	fmt.Printf("%s = %t\n", token.Render(tokens), result)
}

func runTable(cfg cliConfig) {
	if cfg.Expr == "" {
		slog.Error("Table mode requires -expr")
		os.Exit(1)
	}

	tokens, err := token.Tokenize(cfg.Expr)
	if err != nil {
		slog.Error("Tokenize failed", "error", err)
		os.Exit(1)
	}

	table := truthtable.Build(tokens)
	if len(table.Rows) == 0 {
		fmt.Println("no free variables")
		return
	}

	writeTruthTable(os.Stdout, tokens, table)
}

func runSuite(ctx context.Context, cfg cliConfig) {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	runCfg := runner.Config{
		WarmupRuns: s.Runs.Warmup,
		Runs:       s.Runs.Iterations,
	}
	if cfg.Warmup > 0 {
		runCfg.WarmupRuns = cfg.Warmup
	}
	if cfg.Runs > 0 {
		runCfg.Runs = cfg.Runs
	}

	sr, err := runner.New(runCfg).RunSuite(ctx, s)
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		os.Exit(1)
	}

	rpt := report.Generate(sr)
	report.WriteTable(rpt, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if sr.FailCount() > 0 {
		os.Exit(1)
	}
}

func writeTruthTable(w io.Writer, tokens []token.Token, table truthtable.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := append(slices.Clone(table.Variables), token.Render(tokens))
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range table.Rows {
		cells := make([]string, 0, len(header))
		for _, name := range table.Variables {
			cells = append(cells, fmt.Sprintf("%t", row.Assignment[name]))
		}
		switch {
		case row.Err != nil && expr.Kind(row.Err) != "":
			cells = append(cells, expr.Kind(row.Err))
		case row.Err != nil:
			cells = append(cells, "error")
		default:
			cells = append(cells, fmt.Sprintf("%t", row.Result))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	tw.Flush()
}

func runRepl(cfg cliConfig) {
	vars, err := cfg.parseVars()
	if err != nil {
		slog.Error("Invalid -vars", "error", err)
		os.Exit(1)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		printBanner()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("logic> ")
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Println()
			}
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := replCommand(line, vars); quit {
				return
			}
			continue
		}

		evalLine(line, vars)
	}
}

func printBanner() {
	fmt.Println("logic-hunter REPL (Ctrl+D or :quit to exit)")
	fmt.Println()
	fmt.Println("Type a boolean expression over A, B, C to evaluate it.")
	fmt.Println("Commands: :set A=true  :vars  :table EXPR  :palette  :help  :quit")
	fmt.Println()
}

func replCommand(line string, vars map[string]bool) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		printBanner()
	case ":vars":
		for _, name := range token.FreeNames() {
			fmt.Printf("%s=%t\n", name, vars[name])
		}
	case ":set":
		if err := parseAssignments(strings.Join(fields[1:], ","), vars); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	case ":palette":
		palette := token.Palette()
		symbols := make([]string, 0, len(palette))
		for _, tok := range palette {
			symbols = append(symbols, tok.Symbol())
		}
		fmt.Println(strings.Join(symbols, " "))
	case ":table":
		tableCommand(strings.TrimSpace(strings.TrimPrefix(line, ":table")))
	default:
		fmt.Printf("unknown command %q, try :help\n", fields[0])
	}

	return false
}

func tableCommand(input string) {
	if input == "" {
		fmt.Println("usage: :table EXPR")
		return
	}

	tokens, err := token.Tokenize(input)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	table := truthtable.Build(tokens)
	if len(table.Rows) == 0 {
		fmt.Println("no free variables")
		return
	}

	writeTruthTable(os.Stdout, tokens, table)
}

func evalLine(line string, vars map[string]bool) {
	tokens, err := token.Tokenize(line)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	result, err := expr.Evaluate(tokens, expr.Env(vars))
	if err != nil {
		if kind := expr.Kind(err); kind != "" {
			fmt.Printf("error: %v (%s)\n", err, kind)
		} else {
			fmt.Printf("error: %v\n", err)
		}
		return
	}

	fmt.Printf("= %t\n", result)
}
