// Package bench measures ADFGVX round-trip throughput and latency.
package bench

import (
	"crypto/rand"

	"github.com/pkg/errors"

	"github.com/liftbridge-io/adfgvx/adfgvx"
)

// PreGenerateMessages creates numMessages plaintexts of messageLength
// characters drawn from the substitution alphabet. Generating them upfront
// keeps data generation out of the measured time.
func PreGenerateMessages(numMessages, messageLength int) ([]string, error) {
	if numMessages < 0 || messageLength < 0 {
		return nil, errors.Errorf("invalid message shape %dx%d", numMessages, messageLength)
	}
	alphabet := adfgvx.DefaultSquare.Alphabet()
	messages := make([]string, numMessages)

	// Pre-generate the random template once
	template := make([]byte, messageLength)
	if _, err := rand.Read(template); err != nil {
		return nil, errors.Wrap(err, "failed to generate payload")
	}

	for i := range messages {
		messages[i] = generatePayload(alphabet, template)
	}
	return messages, nil
}

// generatePayload maps a copy of template onto alphabet, with a few leading
// bytes re-randomized so messages differ.
func generatePayload(alphabet string, template []byte) string {
	payload := make([]byte, len(template))
	copy(payload, template)
	if len(payload) > 8 {
		rand.Read(payload[:8])
	}
	for i, b := range payload {
		payload[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(payload)
}

// TotalLength returns the total number of characters across all messages.
func TotalLength(messages []string) int64 {
	var total int64
	for _, m := range messages {
		total += int64(len(m))
	}
	return total
}
