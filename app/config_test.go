package app

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// Ensure NewConfig properly parses config files.
func TestNewConfigFromFile(t *testing.T) {
	config, err := NewConfig("configs/full.yaml")
	require.NoError(t, err)

	require.Equal(t, uint32(log.DebugLevel), config.LogLevel)
	require.True(t, config.LogSilent)
	require.Equal(t, "run-42", config.RunID)
	require.Equal(t, 8, config.CipherCacheSize)

	require.Equal(t, "/tmp/adfgvx/key.txt", config.Files.Key)
	require.Equal(t, "/tmp/adfgvx/message.txt", config.Files.Message)
	require.Equal(t, "/tmp/adfgvx/encrypted.txt", config.Files.Encrypted)
	require.Equal(t, "/tmp/adfgvx/decrypted.txt", config.Files.Decrypted)

	require.Equal(t, 50, config.Bench.Messages)
	require.Equal(t, 128, config.Bench.MessageLength)
	require.Equal(t, "GERMAN", config.Bench.Key)
	require.Equal(t, 2*time.Second, config.Bench.TimeLimit)
	require.Equal(t, "json", config.Bench.Format)
}

// Ensure that default config is loaded.
func TestNewConfigDefault(t *testing.T) {
	config, err := NewConfig("")
	require.NoError(t, err)
	require.Equal(t, uint32(log.InfoLevel), config.LogLevel)
	require.NotEmpty(t, config.RunID)
	require.Equal(t, DefaultKeyFile, config.Files.Key)
	require.Equal(t, DefaultMessageFile, config.Files.Message)
	require.Equal(t, DefaultEncryptedFile, config.Files.Encrypted)
	require.Equal(t, DefaultDecryptedFile, config.Files.Decrypted)
	require.Equal(t, 64, config.CipherCacheSize)
	require.Equal(t, "CHAVE123", config.Bench.Key)
	require.Equal(t, 2559, config.Bench.MessageLength)
	require.Equal(t, 500*time.Millisecond, config.Bench.TimeLimit)
	require.NoError(t, config.Validate())
}

// Ensure that both config file and default configs are loaded.
func TestNewConfigDefaultAndFile(t *testing.T) {
	config, err := NewConfig("configs/simple.yaml")
	require.NoError(t, err)
	// Ensure custom configs are loaded
	require.Equal(t, uint32(log.WarnLevel), config.LogLevel)
	require.Equal(t, "./secret.key", config.Files.Key)

	// Ensure also default values are loaded at the same time
	require.Equal(t, DefaultMessageFile, config.Files.Message)
	require.Equal(t, 64, config.CipherCacheSize)
	require.Equal(t, 1000, config.Bench.Messages)
}

func TestNewConfigErrors(t *testing.T) {
	for _, file := range []string{
		"configs/does-not-exist.yaml",
		"configs/bad-level.yaml",
		"configs/bad-bench.yaml",
		"configs/bad-format.yaml",
	} {
		t.Run(file, func(t *testing.T) {
			config, err := NewConfig(file)
			require.Error(t, err)
			require.Nil(t, config)
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	testCases := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"Error", log.ErrorLevel},
	}
	for _, tc := range testCases {
		got, err := GetLogLevel(tc.level)
		require.NoError(t, err)
		require.Equal(t, uint32(tc.want), got)
	}
	_, err := GetLogLevel("trace")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	config := NewDefaultConfig()
	config.CipherCacheSize = 0
	require.Error(t, config.Validate())

	config = NewDefaultConfig()
	config.Bench.MessageLength = 5000
	require.Error(t, config.Validate())

	config = NewDefaultConfig()
	config.Bench.Messages = -1
	require.Error(t, config.Validate())
}

func TestBenchConfigString(t *testing.T) {
	config := NewDefaultConfig()
	s := config.Bench.String()
	require.Contains(t, s, `Key: "CHAVE123"`)
	require.Contains(t, s, "Limit: 500")
}
