package runner

import (
	"github.com/DjordjeVuckovic/logic-hunter/pkg/utils"
)

type CaseResult struct {
	CaseID      string
	Description string
	Expression  string
	Pass        bool
	Reason      string // why the case failed, empty on pass
	Result      *bool  // evaluation outcome when the engine accepted the expression
	ErrorKind   string // taxonomy kind when the engine rejected it
	Rows        int    // enumerated rows for truth-table cases
	Latency     LatencyStats
	Err         error
}

type SuiteResult struct {
	SuiteName string
	Version   string
	Config    Config
	Cases     []CaseResult
}

func (sr *SuiteResult) PassCount() int {
	n := 0
	for _, c := range sr.Cases {
		if c.Pass {
			n++
		}
	}
	return n
}

func (sr *SuiteResult) FailCount() int {
	return len(sr.Cases) - sr.PassCount()
}

// PassRate returns the share of passing cases as a percentage,
// rounded to two decimals. An empty suite result reports zero.
func (sr *SuiteResult) PassRate() float64 {
	if len(sr.Cases) == 0 {
		return 0
	}
	rate := float64(sr.PassCount()) / float64(len(sr.Cases)) * 100
	return utils.RoundDecimal(rate, 2)
}

func (sr *SuiteResult) AggregateLatency() LatencyStats {
	stats := make([]LatencyStats, 0, len(sr.Cases))
	for _, c := range sr.Cases {
		if !c.Latency.IsZero() {
			stats = append(stats, c.Latency)
		}
	}
	return AggregateLatencyStats(stats)
}
