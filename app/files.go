package app

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	atomic_file "github.com/natefinch/atomic"
	"github.com/pkg/errors"

	"github.com/liftbridge-io/adfgvx/adfgvx"
)

var (
	// ErrFileNotFound is returned when an input file cannot be opened.
	ErrFileNotFound = errors.New("file not found or unreadable")

	// ErrEmptyFile is returned when an input file has no line to read.
	ErrEmptyFile = errors.New("file is empty")

	// ErrLineTooLong is returned when the first line of an input file is
	// longer than the caller allows.
	ErrLineTooLong = errors.New("line too long")
)

// ReadLine returns the first line of the file at path with any trailing "\r"
// or "\n" removed. Lines longer than max bytes are rejected rather than cut.
func ReadLine(path string, max int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(ErrFileNotFound, "open %s: %v", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrapf(ErrFileNotFound, "read %s: %v", path, err)
	}
	if err == io.EOF && line == "" {
		return "", errors.Wrap(ErrEmptyFile, path)
	}
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	if len(line) > max {
		return "", errors.Wrapf(ErrLineTooLong, "%s: %d bytes exceeds %d", path, len(line), max)
	}
	return line, nil
}

// WriteCipher writes the cipher columns to path, in order and without
// delimiters. The file is replaced atomically.
func WriteCipher(path string, cols adfgvx.Columns) error {
	var buf bytes.Buffer
	buf.Grow(cols.Len())
	for _, col := range cols {
		buf.Write(col)
	}
	if err := atomic_file.WriteFile(path, &buf); err != nil {
		return errors.Wrapf(err, "failed to write cipher file %s", path)
	}
	return nil
}

// WritePlaintext writes text to path, replacing the file atomically.
func WritePlaintext(path, text string) error {
	if err := atomic_file.WriteFile(path, strings.NewReader(text)); err != nil {
		return errors.Wrapf(err, "failed to write plaintext file %s", path)
	}
	return nil
}
