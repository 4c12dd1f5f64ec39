package report

import (
	"time"

	"github.com/DjordjeVuckovic/logic-hunter/internal/runner"
)

func Generate(sr *runner.SuiteResult) *Report {
	r := &Report{
		Meta: Meta{
			SuiteName:   sr.SuiteName,
			Version:     sr.Version,
			Timestamp:   time.Now().UTC(),
			Warmup:      sr.Config.WarmupRuns,
			Iterations:  sr.Config.Runs,
			Environment: NewEnvironmentInfo(),
		},
		Summary: Summary{
			Cases:    len(sr.Cases),
			Passed:   sr.PassCount(),
			Failed:   sr.FailCount(),
			PassRate: sr.PassRate(),
			Latency:  sr.AggregateLatency(),
		},
	}

	for _, c := range sr.Cases {
		entry := CaseEntry{
			CaseID:      c.CaseID,
			Description: c.Description,
			Expression:  c.Expression,
			Status:      StatusFail,
			Reason:      c.Reason,
			Result:      c.Result,
			ErrorKind:   c.ErrorKind,
			Rows:        c.Rows,
			Latency:     c.Latency,
		}
		if c.Pass {
			entry.Status = StatusPass
		}
		r.Cases = append(r.Cases, entry)
	}

	return r
}
