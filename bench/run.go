package bench

import (
	"context"
	"time"

	"github.com/liftbridge-io/adfgvx/adfgvx"
)

// Run encodes and decodes every message with c, recording the latency of each
// round trip. A message that fails to encode, decode or reproduce itself is
// counted as an error. Run stops early when ctx is done and returns the
// statistics gathered so far with ctx.Err().
func Run(ctx context.Context, c *adfgvx.Cipher, messages []string) (*Stats, error) {
	stats := NewStats()
	stats.Start()
	defer stats.Stop()

	for _, msg := range messages {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		start := time.Now()
		enc, err := c.Encode(msg)
		if err != nil {
			stats.RecordError()
			continue
		}
		dec, err := c.Decode(enc)
		stats.RecordLatency(time.Since(start))
		if err != nil || dec != msg {
			stats.RecordError()
			continue
		}
		stats.RecordRoundTrip(len(msg), len(enc))
	}
	return stats, nil
}
