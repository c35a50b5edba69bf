// Package app wires the ADFGVX cipher to its files, configuration and
// logging.
package app

import (
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/liftbridge-io/adfgvx/adfgvx"
	"github.com/liftbridge-io/adfgvx/app/logger"
	"github.com/liftbridge-io/adfgvx/bench"
)

const previewLength = 50

// ErrMismatch is returned when a decrypted message differs from the original.
var ErrMismatch = errors.New("decrypted message does not match original")

// App runs encryption, decryption, verification and benchmarks as described
// by its Config.
type App struct {
	config  *Config
	logger  logger.Logger
	ciphers *lru.Cache
}

// New creates an App from config.
func New(config *Config) *App {
	l := logger.NewLogger(config.LogLevel)
	l.SetField("run", config.RunID)
	if config.LogSilent {
		l.Silent(true)
	}
	size := config.CipherCacheSize
	if size <= 0 {
		size = defaultCipherCacheSize
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New(size)
	return &App{
		config:  config,
		logger:  l,
		ciphers: cache,
	}
}

// Logger returns the App's logger.
func (a *App) Logger() logger.Logger {
	return a.logger
}

// Config returns the App's configuration.
func (a *App) Config() *Config {
	return a.config
}

// cipherFor returns the Cipher for key, reusing a cached one when possible.
func (a *App) cipherFor(key string) (*adfgvx.Cipher, error) {
	if c, ok := a.ciphers.Get(key); ok {
		return c.(*adfgvx.Cipher), nil
	}
	c, err := adfgvx.New(key)
	if err != nil {
		return nil, err
	}
	a.ciphers.Add(key, c)
	return c, nil
}

// readKey reads and validates the key file.
func (a *App) readKey() (*adfgvx.Cipher, error) {
	path := a.config.Files.Key
	a.logger.Infof("Reading key from %s", path)
	// Read generously so an overlong key is reported as an invalid key
	// rather than an I/O error.
	key, err := ReadLine(path, adfgvx.MaxMessageLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read key")
	}
	c, err := a.cipherFor(key)
	if err != nil {
		return nil, errors.Wrapf(err, "key file %s", path)
	}
	a.logger.Debugf("Key %q (length %d), column order %v", key, len(key), c.Order())
	return c, nil
}

// Encrypt enciphers the message file with the key file and writes the result
// to the encrypted file.
func (a *App) Encrypt() error {
	c, err := a.readKey()
	if err != nil {
		return err
	}

	path := a.config.Files.Message
	a.logger.Infof("Reading message from %s", path)
	message, err := ReadLine(path, adfgvx.MaxMessageLength)
	if err != nil {
		return errors.Wrap(err, "failed to read message")
	}
	a.logger.Debugf("Message: %q", preview(message))

	start := time.Now()
	cols, err := c.EncodeColumns(message)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt message")
	}
	if dropped := len(message) - cols.Len()/2; dropped > 0 {
		a.logger.Warnf("Dropped %d characters not in the substitution square", dropped)
	}
	a.logger.Infof("Encrypted %s characters into %s symbols in %s",
		humanize.Comma(int64(len(message))), humanize.Comma(int64(cols.Len())),
		durafmt.Parse(time.Since(start)))

	out := a.config.Files.Encrypted
	if err := WriteCipher(out, cols); err != nil {
		return err
	}
	a.logger.Infof("Wrote %s to %s", humanize.Bytes(uint64(cols.Len())), out)
	return nil
}

// Decrypt deciphers the encrypted file with the key file and writes the
// plaintext to the decrypted file. If the cipher stream is malformed, the
// plaintext recovered before the anomaly is still written and returned along
// with the error.
func (a *App) Decrypt() (string, error) {
	c, err := a.readKey()
	if err != nil {
		return "", err
	}

	path := a.config.Files.Encrypted
	a.logger.Infof("Reading cipher text from %s", path)
	stream, err := ReadLine(path, 2*adfgvx.MaxMessageLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to read cipher text")
	}
	a.logger.Debugf("Cipher text: %q", preview(stream))

	plaintext, decodeErr := c.Decode(stream)
	if decodeErr != nil {
		a.logger.Warnf("Decryption stopped early after %d characters: %v", len(plaintext), decodeErr)
	} else {
		a.logger.Infof("Decrypted %s symbols into %s characters",
			humanize.Comma(int64(len(stream))), humanize.Comma(int64(len(plaintext))))
	}
	a.logger.Debugf("Plaintext: %q", preview(plaintext))

	out := a.config.Files.Decrypted
	if err := WritePlaintext(out, plaintext); err != nil {
		return plaintext, err
	}
	a.logger.Infof("Wrote plaintext to %s", out)
	if decodeErr != nil {
		return plaintext, errors.Wrap(decodeErr, "failed to decrypt cipher text")
	}
	return plaintext, nil
}

// Verify decrypts the encrypted file and compares the result with the message
// file. It returns ErrMismatch if they differ.
func (a *App) Verify() error {
	plaintext, err := a.Decrypt()
	if err != nil {
		return err
	}

	path := a.config.Files.Message
	a.logger.Infof("Reading original message from %s for comparison", path)
	original, err := ReadLine(path, adfgvx.MaxMessageLength)
	if err != nil {
		return errors.Wrap(err, "failed to read original message")
	}
	if original != plaintext {
		a.logger.Errorf("Decrypted text does not match %s", path)
		return errors.Wrapf(ErrMismatch, "got %q, want %q", preview(plaintext), preview(original))
	}
	a.logger.Infof("Decrypted text matches %s", path)
	return nil
}

// Bench runs the round-trip benchmark and writes the results to w. It returns
// ErrMismatch if any message failed to round trip.
func (a *App) Bench(ctx context.Context, w io.Writer) (*bench.Stats, error) {
	cfg := a.config.Bench
	c, err := a.cipherFor(cfg.Key)
	if err != nil {
		return nil, errors.Wrap(err, "invalid bench key")
	}
	a.logger.Infof("Generating %s messages of %d characters", humanize.Comma(int64(cfg.Messages)), cfg.MessageLength)
	messages, err := bench.PreGenerateMessages(cfg.Messages, cfg.MessageLength)
	if err != nil {
		return nil, err
	}

	a.logger.Infof("Running benchmark %s", cfg)
	stats, err := bench.Run(ctx, c, messages)
	if err != nil {
		return stats, err
	}
	if err := bench.PrintResults(w, stats, cfg.Format); err != nil {
		return stats, err
	}

	if stats.Exceeded(cfg.TimeLimit) {
		a.logger.Warnf("Slowest round trip took %s, above the %s limit",
			durafmt.Parse(stats.LatencyMax()), durafmt.Parse(cfg.TimeLimit))
	} else {
		a.logger.Infof("All round trips completed within %s", durafmt.Parse(cfg.TimeLimit))
	}
	if n := stats.Errors(); n > 0 {
		return stats, errors.Wrapf(ErrMismatch, "%d of %d messages", n, len(messages))
	}
	return stats, nil
}

func preview(s string) string {
	if len(s) <= previewLength {
		return s
	}
	return s[:previewLength] + "..."
}
