package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/logic-hunter/internal/runner"
)

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

type Report struct {
	Meta    Meta        `json:"meta"`
	Summary Summary     `json:"summary"`
	Cases   []CaseEntry `json:"cases"`
}

type Meta struct {
	SuiteName   string          `json:"suite_name"`
	Version     string          `json:"version,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Warmup      int             `json:"warmup"`
	Iterations  int             `json:"iterations"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Cases    int                 `json:"cases"`
	Passed   int                 `json:"passed"`
	Failed   int                 `json:"failed"`
	PassRate float64             `json:"pass_rate"`
	Latency  runner.LatencyStats `json:"latency"`
}

type CaseEntry struct {
	CaseID      string              `json:"case_id"`
	Description string              `json:"description,omitempty"`
	Expression  string              `json:"expression"`
	Status      string              `json:"status"`
	Reason      string              `json:"reason,omitempty"`
	Result      *bool               `json:"result,omitempty"`
	ErrorKind   string              `json:"error_kind,omitempty"`
	Rows        int                 `json:"rows,omitempty"`
	Latency     runner.LatencyStats `json:"latency"`
}
