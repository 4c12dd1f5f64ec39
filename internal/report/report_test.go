package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/logic-hunter/internal/runner"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *runner.SuiteResult {
	lat := runner.ComputeLatencyStats([]time.Duration{
		100 * time.Microsecond,
		200 * time.Microsecond,
		300 * time.Microsecond,
	})

	return &runner.SuiteResult{
		SuiteName: "basics",
		Version:   "1.0",
		Config:    runner.Config{WarmupRuns: 1, Runs: 3},
		Cases: []runner.CaseResult{
			{
				CaseID:     "and_true",
				Expression: "A && B",
				Pass:       true,
				Result:     lo.ToPtr(true),
				Latency:    lat,
			},
			{
				CaseID:     "dangling",
				Expression: "A &&",
				Pass:       true,
				ErrorKind:  "dangling_operator",
				Latency:    lat,
			},
			{
				CaseID:     "negation_table",
				Expression: "!A",
				Pass:       true,
				Rows:       2,
				Latency:    lat,
			},
			{
				CaseID:     "wrong",
				Expression: "A || B",
				Pass:       false,
				Reason:     "expected false, evaluated to true",
				Result:     lo.ToPtr(true),
				Latency:    lat,
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate(sampleResult())

	assert.Equal(t, "basics", r.Meta.SuiteName)
	assert.Equal(t, "1.0", r.Meta.Version)
	assert.Equal(t, 1, r.Meta.Warmup)
	assert.Equal(t, 3, r.Meta.Iterations)
	assert.NotEmpty(t, r.Meta.Environment.GoVersion)
	assert.False(t, r.Meta.Timestamp.IsZero())

	assert.Equal(t, 4, r.Summary.Cases)
	assert.Equal(t, 3, r.Summary.Passed)
	assert.Equal(t, 1, r.Summary.Failed)
	assert.Equal(t, 75.0, r.Summary.PassRate)
	assert.Equal(t, 12, r.Summary.Latency.SampleCount)

	require.Len(t, r.Cases, 4)
	assert.Equal(t, StatusPass, r.Cases[0].Status)
	assert.Equal(t, StatusFail, r.Cases[3].Status)
	assert.Equal(t, "expected false, evaluated to true", r.Cases[3].Reason)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate(sampleResult()), &buf)

	out := buf.String()
	assert.Contains(t, out, "=== Suite: basics ===")
	assert.Contains(t, out, "Per-Case Results")
	assert.Contains(t, out, "and_true")
	assert.Contains(t, out, "dangling_operator")
	assert.Contains(t, out, "table[2 rows]")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "Failures")
	assert.Contains(t, out, "expected false, evaluated to true")

	// a buffer is not a terminal, so no escape codes
	assert.NotContains(t, out, "\x1b[")
}

func TestWriteTable_AllPassing(t *testing.T) {
	sr := sampleResult()
	sr.Cases = sr.Cases[:3]

	var buf bytes.Buffer
	WriteTable(Generate(sr), &buf)

	assert.NotContains(t, buf.String(), "Failures")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(Generate(sampleResult()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "basics", decoded.Meta.SuiteName)
	assert.Equal(t, 4, decoded.Summary.Cases)
	assert.Equal(t, 75.0, decoded.Summary.PassRate)
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(Generate(sampleResult()), filepath.Join(t.TempDir(), "missing", "report.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "write report")
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "true", outcome(&CaseEntry{Result: lo.ToPtr(true)}))
	assert.Equal(t, "false", outcome(&CaseEntry{Result: lo.ToPtr(false)}))
	assert.Equal(t, "empty_expression", outcome(&CaseEntry{ErrorKind: "empty_expression"}))
	assert.Equal(t, "table[8 rows]", outcome(&CaseEntry{Rows: 8}))
	assert.Equal(t, "-", outcome(&CaseEntry{}))
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "-", fmtDuration(0))
	assert.Equal(t, "2.5µs", fmtDuration(2500*time.Nanosecond))
	assert.Equal(t, "1.50ms", fmtDuration(1500*time.Microsecond))
	assert.Equal(t, "2.00s", fmtDuration(2*time.Second))
}
