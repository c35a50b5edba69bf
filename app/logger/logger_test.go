package logger

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger(uint32(log.DebugLevel))
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestLogger_LogMethods(t *testing.T) {
	l := NewNoopLogger()

	// These should not panic
	l.Debug("test debug")
	l.Info("test info")
	l.Warn("test warn")
	l.Error("test error")
	l.Debugf("test %s", "debugf")
	l.Infof("test %s", "infof")
	l.Warnf("test %s", "warnf")
	l.Errorf("test %s", "errorf")
}

func TestLogger_Level(t *testing.T) {
	l := NewLogger(uint32(log.WarnLevel))

	var buf bytes.Buffer
	l.SetWriter(&buf)

	l.Info("hidden")
	if buf.Len() > 0 {
		t.Errorf("expected info to be filtered at warn level, got: %s", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn output, got: %s", buf.String())
	}
}

func TestLogger_Prefix(t *testing.T) {
	l := NewLogger(uint32(log.DebugLevel)).(*logger)

	// Set output to capture logs
	var buf bytes.Buffer
	l.Logger.SetOutput(&buf)

	l.Prefix("[test] ")
	l.Info("message")

	output := buf.String()
	if !strings.Contains(output, "[test]") {
		t.Errorf("expected prefix in output, got: %s", output)
	}

	// Clear prefix
	l.Prefix("")
	buf.Reset()
	l.Info("no prefix")

	output = buf.String()
	if strings.Contains(output, "[test]") {
		t.Errorf("expected no prefix in output, got: %s", output)
	}
}

func TestLogger_SetField(t *testing.T) {
	l := NewLogger(uint32(log.DebugLevel))

	var buf bytes.Buffer
	l.SetWriter(&buf)

	l.SetField("run", "abc123")
	l.Infof("encrypted %d symbols", 10)

	output := buf.String()
	if !strings.Contains(output, "run=abc123") {
		t.Errorf("expected run field in output, got: %s", output)
	}
	if !strings.Contains(output, "encrypted 10 symbols") {
		t.Errorf("expected message in output, got: %s", output)
	}
}

func TestLogger_Silent(t *testing.T) {
	l := NewLogger(uint32(log.DebugLevel)).(*logger)

	// Capture original output
	var buf bytes.Buffer
	l.Logger.SetOutput(&buf)

	// Enable silent mode
	l.Silent(true)
	l.Info("should not appear")

	if buf.Len() > 0 {
		t.Errorf("expected no output in silent mode, got: %s", buf.String())
	}

	// Disable silent mode
	l.Silent(false)
	l.Info("should appear")

	if buf.Len() == 0 {
		t.Error("expected output after disabling silent mode")
	}
	if l.Writer() != &buf {
		t.Error("expected original writer to be restored")
	}
}

func TestLogger_SilentPanicsIfNotEnabled(t *testing.T) {
	l := NewLogger(uint32(log.DebugLevel)).(*logger)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when disabling Silent without enabling first")
		}
	}()

	l.Silent(false) // Should panic
}

// Ensure interfaces are implemented
var _ Logger = (*logger)(nil)
var _ log.Hook = (*fieldHook)(nil)
var _ log.Formatter = (*prefixFormatter)(nil)
