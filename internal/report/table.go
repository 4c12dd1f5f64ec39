package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func WriteTable(r *Report, w io.Writer) {
	color := useColor(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Meta.SuiteName)
	writeSummary(tw, r)
	writeCases(tw, r, color)
	writeFailures(tw, r)

	tw.Flush()
}

func writeSummary(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Summary (%d iterations per case, %d warmup)\n\n", r.Meta.Iterations, r.Meta.Warmup)

	header := []string{"Cases", "Passed", "Failed", "Pass %", "p50", "p95", "p99", "Max"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	lat := r.Summary.Latency
	row := []string{
		fmt.Sprintf("%d", r.Summary.Cases),
		fmt.Sprintf("%d", r.Summary.Passed),
		fmt.Sprintf("%d", r.Summary.Failed),
		fmt.Sprintf("%.2f", r.Summary.PassRate),
		fmtDuration(lat.P50()),
		fmtDuration(lat.P95()),
		fmtDuration(lat.P99()),
		fmtDuration(lat.Max),
	}
	fmt.Fprintln(tw, strings.Join(row, "\t"))

	fmt.Fprintln(tw)
}

func writeCases(tw *tabwriter.Writer, r *Report, color bool) {
	fmt.Fprintf(tw, "Per-Case Results\n\n")

	header := []string{"Case", "Expression", "Outcome", "p50", "p95", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Cases {
		row := []string{
			e.CaseID,
			e.Expression,
			outcome(&e),
			fmtDuration(e.Latency.P50()),
			fmtDuration(e.Latency.P95()),
			statusCell(e.Status, color),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeFailures(tw *tabwriter.Writer, r *Report) {
	if r.Summary.Failed == 0 {
		return
	}

	fmt.Fprintf(tw, "Failures\n\n")
	for _, e := range r.Cases {
		if e.Status == StatusFail {
			fmt.Fprintf(tw, "%s\t%s\n", e.CaseID, e.Reason)
		}
	}
	fmt.Fprintln(tw)
}

func outcome(e *CaseEntry) string {
	switch {
	case e.Result != nil:
		return fmt.Sprintf("%t", *e.Result)
	case e.ErrorKind != "":
		return e.ErrorKind
	case e.Rows > 0:
		return fmt.Sprintf("table[%d rows]", e.Rows)
	default:
		return "-"
	}
}

// statusCell colors the last column only, so escape bytes never skew
// the tab stops of the columns before it.
func statusCell(status string, color bool) string {
	if !color {
		return strings.ToUpper(status)
	}
	if status == StatusPass {
		return ansiGreen + "PASS" + ansiReset
	}
	return ansiRed + "FAIL" + ansiReset
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
