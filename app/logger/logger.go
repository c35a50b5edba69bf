package logger

import (
	"io"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
)

// Logger interface is used to allow tests to inject custom loggers.
type Logger interface {
	Fatalf(string, ...interface{})
	Debugf(string, ...interface{})
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debug(...interface{})
	Warn(...interface{})
	Info(...interface{})
	Error(...interface{})
	Fatal(...interface{})
	Writer() io.Writer
	SetWriter(io.Writer)
	SetField(string, interface{})
	Prefix(string)
	Silent(bool)
}

type logger struct {
	*log.Logger
	formatter *prefixFormatter
	fields    *fieldHook
	saved     io.Writer
}

// NewLogger returns a new Logger instance backed by Logrus.
func NewLogger(level uint32) Logger {
	l := log.New()
	l.SetLevel(log.Level(level))
	f := &prefixFormatter{
		Formatter: &log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	}
	l.Formatter = f
	h := &fieldHook{fields: log.Fields{}}
	l.AddHook(h)
	return &logger{Logger: l, formatter: f, fields: h}
}

// NewNoopLogger returns a Logger that discards everything written to it.
func NewNoopLogger() Logger {
	l := NewLogger(uint32(log.DebugLevel))
	l.SetWriter(ioutil.Discard)
	return l
}

func (l *logger) Writer() io.Writer {
	return l.Out
}

func (l *logger) SetWriter(writer io.Writer) {
	l.Out = writer
}

// SetField attaches key=value to every subsequent log line.
func (l *logger) SetField(key string, value interface{}) {
	l.fields.set(key, value)
}

// Prefix prepends p to every subsequent message. An empty p clears it.
func (l *logger) Prefix(p string) {
	l.formatter.prefix = p
}

// Silent discards output while enabled. Disabling restores the writer that
// was active when it was enabled, so it panics if Silent(true) was never
// called.
func (l *logger) Silent(enable bool) {
	if enable {
		if l.saved == nil {
			l.saved = l.Out
		}
		l.Out = ioutil.Discard
		return
	}
	if l.saved == nil {
		panic("logger: Silent(false) called while not silent")
	}
	l.Out = l.saved
	l.saved = nil
}

type prefixFormatter struct {
	log.Formatter
	prefix string
}

func (f *prefixFormatter) Format(e *log.Entry) ([]byte, error) {
	if f.prefix != "" {
		e.Message = f.prefix + e.Message
	}
	return f.Formatter.Format(e)
}

// fieldHook adds a fixed set of fields to every entry.
type fieldHook struct {
	fields log.Fields
}

func (h *fieldHook) set(key string, value interface{}) {
	fields := make(log.Fields, len(h.fields)+1)
	for k, v := range h.fields {
		fields[k] = v
	}
	fields[key] = value
	h.fields = fields
}

func (h *fieldHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *fieldHook) Fire(e *log.Entry) error {
	for k, v := range h.fields {
		if _, ok := e.Data[k]; !ok {
			e.Data[k] = v
		}
	}
	return nil
}
