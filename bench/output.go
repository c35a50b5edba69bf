package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Result holds the formatted benchmark results.
type Result struct {
	Duration          string  `json:"duration"`
	TotalMessages     int64   `json:"total_messages"`
	TotalChars        int64   `json:"total_chars"`
	TotalSymbols      int64   `json:"total_symbols"`
	MessagesPerSecond float64 `json:"messages_per_second"`
	CharsPerSecond    float64 `json:"chars_per_second"`
	LatencyMin        string  `json:"latency_min,omitempty"`
	LatencyMean       string  `json:"latency_mean,omitempty"`
	LatencyP50        string  `json:"latency_p50,omitempty"`
	LatencyP95        string  `json:"latency_p95,omitempty"`
	LatencyP99        string  `json:"latency_p99,omitempty"`
	LatencyP999       string  `json:"latency_p999,omitempty"`
	LatencyMax        string  `json:"latency_max,omitempty"`
	Errors            int64   `json:"errors"`
}

// NewResult summarizes stats.
func NewResult(stats *Stats) Result {
	result := Result{
		Duration:          stats.Duration().String(),
		TotalMessages:     stats.Messages(),
		TotalChars:        stats.Chars(),
		TotalSymbols:      stats.Symbols(),
		MessagesPerSecond: stats.MessagesPerSecond(),
		CharsPerSecond:    stats.CharsPerSecond(),
		Errors:            stats.Errors(),
	}

	// Include latency stats if we have samples
	if stats.LatencyCount() > 0 {
		result.LatencyMin = stats.LatencyMin().String()
		result.LatencyMean = stats.LatencyMean().String()
		result.LatencyP50 = stats.LatencyPercentile(50).String()
		result.LatencyP95 = stats.LatencyPercentile(95).String()
		result.LatencyP99 = stats.LatencyPercentile(99).String()
		result.LatencyP999 = stats.LatencyPercentile(99.9).String()
		result.LatencyMax = stats.LatencyMax().String()
	}
	return result
}

// PrintResults writes the benchmark results to w as "text" or "json".
func PrintResults(w io.Writer, stats *Stats, format string) error {
	result := NewResult(stats)
	switch format {
	case "json":
		return printJSON(w, result)
	case "text", "":
		return printText(w, result)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func printJSON(w io.Writer, result Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printText(out io.Writer, r Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "=== ADFGVX Round-Trip Benchmark Results ===")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Duration:\t%s\n", r.Duration)
	fmt.Fprintf(w, "Messages:\t%s\n", humanize.Comma(r.TotalMessages))
	fmt.Fprintf(w, "Characters:\t%s\n", humanize.Comma(r.TotalChars))
	fmt.Fprintf(w, "Symbols:\t%s\n", humanize.Comma(r.TotalSymbols))
	fmt.Fprintf(w, "Throughput:\t%s msgs/sec\n", humanize.CommafWithDigits(r.MessagesPerSecond, 2))
	fmt.Fprintf(w, "Bandwidth:\t%s chars/sec\n", humanize.CommafWithDigits(r.CharsPerSecond, 2))
	fmt.Fprintln(w, "")

	if r.LatencyP50 != "" {
		fmt.Fprintln(w, "--- Round-Trip Latency ---")
		fmt.Fprintf(w, "Min:\t%s\n", r.LatencyMin)
		fmt.Fprintf(w, "Mean:\t%s\n", r.LatencyMean)
		fmt.Fprintf(w, "P50:\t%s\n", r.LatencyP50)
		fmt.Fprintf(w, "P95:\t%s\n", r.LatencyP95)
		fmt.Fprintf(w, "P99:\t%s\n", r.LatencyP99)
		fmt.Fprintf(w, "P99.9:\t%s\n", r.LatencyP999)
		fmt.Fprintf(w, "Max:\t%s\n", r.LatencyMax)
		fmt.Fprintln(w, "")
	}

	fmt.Fprintf(w, "Errors:\t%d\n", r.Errors)
	fmt.Fprintln(w, "")
	return w.Flush()
}
