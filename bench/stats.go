package bench

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Stats tracks benchmark statistics including throughput and latency.
type Stats struct {
	mu        sync.Mutex
	startTime time.Time
	endTime   time.Time

	messages int64
	chars    int64
	symbols  int64
	errors   int64

	// HDR histogram for round-trip latency tracking (in microseconds)
	// Range: 1 microsecond to 60 seconds, 3 significant figures
	latencyHist *hdrhistogram.Histogram
}

// NewStats creates a new Stats instance with HDR histogram initialized.
func NewStats() *Stats {
	return &Stats{
		latencyHist: hdrhistogram.New(1, 60000000, 3),
	}
}

// Start begins the timing period.
func (s *Stats) Start() {
	s.startTime = time.Now()
}

// Stop ends the timing period.
func (s *Stats) Stop() {
	s.endTime = time.Now()
}

// RecordRoundTrip records one message of chars plaintext characters that
// encoded to symbols cipher symbols.
func (s *Stats) RecordRoundTrip(chars, symbols int) {
	atomic.AddInt64(&s.messages, 1)
	atomic.AddInt64(&s.chars, int64(chars))
	atomic.AddInt64(&s.symbols, int64(symbols))
}

// RecordLatency records a latency measurement.
func (s *Stats) RecordLatency(d time.Duration) {
	s.mu.Lock()
	s.latencyHist.RecordValue(d.Microseconds())
	s.mu.Unlock()
}

// RecordError increments the error counter.
func (s *Stats) RecordError() {
	atomic.AddInt64(&s.errors, 1)
}

// Duration returns the total benchmark duration.
func (s *Stats) Duration() time.Duration {
	return s.endTime.Sub(s.startTime)
}

// Messages returns the number of messages processed.
func (s *Stats) Messages() int64 {
	return atomic.LoadInt64(&s.messages)
}

// Chars returns the total plaintext characters processed.
func (s *Stats) Chars() int64 {
	return atomic.LoadInt64(&s.chars)
}

// Symbols returns the total cipher symbols produced.
func (s *Stats) Symbols() int64 {
	return atomic.LoadInt64(&s.symbols)
}

// Errors returns the total error count.
func (s *Stats) Errors() int64 {
	return atomic.LoadInt64(&s.errors)
}

// MessagesPerSecond calculates the message throughput.
func (s *Stats) MessagesPerSecond() float64 {
	duration := s.Duration().Seconds()
	if duration == 0 {
		return 0
	}
	return float64(s.Messages()) / duration
}

// CharsPerSecond calculates the plaintext character throughput.
func (s *Stats) CharsPerSecond() float64 {
	duration := s.Duration().Seconds()
	if duration == 0 {
		return 0
	}
	return float64(s.Chars()) / duration
}

// LatencyPercentile returns the latency at a given percentile.
func (s *Stats) LatencyPercentile(p float64) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.latencyHist.ValueAtQuantile(p)) * time.Microsecond
}

// LatencyMean returns the mean latency.
func (s *Stats) LatencyMean() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.latencyHist.Mean()) * time.Microsecond
}

// LatencyMin returns the minimum latency recorded.
func (s *Stats) LatencyMin() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.latencyHist.Min()) * time.Microsecond
}

// LatencyMax returns the maximum latency recorded.
func (s *Stats) LatencyMax() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.latencyHist.Max()) * time.Microsecond
}

// LatencyCount returns the number of latency samples recorded.
func (s *Stats) LatencyCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latencyHist.TotalCount()
}

// Exceeded reports whether the slowest recorded round trip took longer than
// limit. A non-positive limit is never exceeded.
func (s *Stats) Exceeded(limit time.Duration) bool {
	if limit <= 0 {
		return false
	}
	return s.LatencyMax() > limit
}
