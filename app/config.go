package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/nats-io/nuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/liftbridge-io/adfgvx/adfgvx"
)

const (
	// DefaultKeyFile is the key file read if one is not specified.
	DefaultKeyFile = "./key.txt"

	// DefaultMessageFile is the plaintext file read if one is not specified.
	DefaultMessageFile = "./message.txt"

	// DefaultEncryptedFile is the cipher file written and read if one is not
	// specified.
	DefaultEncryptedFile = "./encrypted.txt"

	// DefaultDecryptedFile is the file decrypted plaintext is written to if
	// one is not specified.
	DefaultDecryptedFile = "./decrypted_test_output.txt"
)

const (
	defaultCipherCacheSize   = 64
	defaultBenchMessages     = 1000
	defaultBenchMessageLen   = 2559
	defaultBenchKey          = "CHAVE123"
	defaultBenchTimeLimit    = 500 * time.Millisecond
	defaultBenchOutputFormat = "text"
)

// FilesConfig contains the paths of the files a run reads and writes.
type FilesConfig struct {
	Key       string
	Message   string
	Encrypted string
	Decrypted string
}

// BenchConfig contains settings for the throughput benchmark.
type BenchConfig struct {
	Messages      int
	MessageLength int
	Key           string
	TimeLimit     time.Duration
	Format        string
}

// String returns a human-readable summary of the benchmark settings.
func (b BenchConfig) String() string {
	return fmt.Sprintf("[Messages: %d, Length: %d, Key: %q, Limit: %s, Format: %s]",
		b.Messages, b.MessageLength, b.Key, durafmt.Parse(b.TimeLimit), b.Format)
}

// Config contains all settings for an ADFGVX run.
type Config struct {
	LogLevel        uint32
	LogSilent       bool
	RunID           string
	CipherCacheSize int
	Files           FilesConfig
	Bench           BenchConfig
}

// new Viper to parse configuration file
func newViper() *viper.Viper {
	v := viper.New()
	return v
}

// NewDefaultConfig creates a new Config with default settings.
func NewDefaultConfig() *Config {
	config := &Config{}
	config.LogLevel = uint32(log.InfoLevel)
	config.RunID = nuid.Next()
	config.CipherCacheSize = defaultCipherCacheSize
	config.Files.Key = DefaultKeyFile
	config.Files.Message = DefaultMessageFile
	config.Files.Encrypted = DefaultEncryptedFile
	config.Files.Decrypted = DefaultDecryptedFile
	config.Bench.Messages = defaultBenchMessages
	config.Bench.MessageLength = defaultBenchMessageLen
	config.Bench.Key = defaultBenchKey
	config.Bench.TimeLimit = defaultBenchTimeLimit
	config.Bench.Format = defaultBenchOutputFormat
	return config
}

// GetLogLevel converts the level string to its corresponding int value. It
// returns an error if the level is invalid.
func GetLogLevel(level string) (uint32, error) {
	var l uint32
	switch strings.ToLower(level) {
	case "debug":
		l = uint32(log.DebugLevel)
	case "info":
		l = uint32(log.InfoLevel)
	case "warn":
		l = uint32(log.WarnLevel)
	case "error":
		l = uint32(log.ErrorLevel)
	default:
		return 0, fmt.Errorf("Invalid log.level setting %q", level)
	}
	return l, nil
}

// NewConfig creates a new Config with default settings and applies any
// settings from the given configuration file. An empty path yields the
// defaults.
func NewConfig(configFile string) (*Config, error) {
	config := NewDefaultConfig()
	if configFile == "" {
		return config, nil
	}

	v := newViper()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
	}

	if v.IsSet("log.level") {
		level, err := GetLogLevel(v.GetString("log.level"))
		if err != nil {
			return nil, err
		}
		config.LogLevel = level
	}

	if v.IsSet("log.silent") {
		config.LogSilent = v.GetBool("log.silent")
	}

	if v.IsSet("run.id") {
		config.RunID = v.GetString("run.id")
	}

	if v.IsSet("cipher.cache.size") {
		config.CipherCacheSize = v.GetInt("cipher.cache.size")
	}

	parseFilesConfig(config, v)

	if err := parseBenchConfig(config, v); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// parseFilesConfig parses the `files` section of a config file and populates
// the given Config.
func parseFilesConfig(config *Config, v *viper.Viper) {
	if v.IsSet("files.key") {
		config.Files.Key = v.GetString("files.key")
	}
	if v.IsSet("files.message") {
		config.Files.Message = v.GetString("files.message")
	}
	if v.IsSet("files.encrypted") {
		config.Files.Encrypted = v.GetString("files.encrypted")
	}
	if v.IsSet("files.decrypted") {
		config.Files.Decrypted = v.GetString("files.decrypted")
	}
}

// parseBenchConfig parses the `bench` section of a config file and populates
// the given Config.
func parseBenchConfig(config *Config, v *viper.Viper) error {
	if v.IsSet("bench.messages") {
		config.Bench.Messages = v.GetInt("bench.messages")
	}
	if v.IsSet("bench.message.length") {
		config.Bench.MessageLength = v.GetInt("bench.message.length")
	}
	if v.IsSet("bench.key") {
		config.Bench.Key = v.GetString("bench.key")
	}
	if v.IsSet("bench.time.limit") {
		dur, err := time.ParseDuration(v.GetString("bench.time.limit"))
		if err != nil {
			return errors.Wrap(err, "invalid bench.time.limit")
		}
		config.Bench.TimeLimit = dur
	}
	if v.IsSet("bench.format") {
		config.Bench.Format = v.GetString("bench.format")
	}
	return nil
}

// Validate checks settings that cannot be used as given.
func (c *Config) Validate() error {
	if c.CipherCacheSize <= 0 {
		return fmt.Errorf("cipher.cache.size must be positive, got %d", c.CipherCacheSize)
	}
	if c.Bench.Messages < 0 {
		return fmt.Errorf("bench.messages must not be negative, got %d", c.Bench.Messages)
	}
	if c.Bench.MessageLength < 0 || c.Bench.MessageLength > adfgvx.MaxMessageLength {
		return fmt.Errorf("bench.message.length must be between 0 and %d, got %d",
			adfgvx.MaxMessageLength, c.Bench.MessageLength)
	}
	switch c.Bench.Format {
	case "text", "json":
	default:
		return fmt.Errorf("Invalid bench.format setting %q", c.Bench.Format)
	}
	return nil
}
