// Package output provides logging and styled terminal output for pumpdesign.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Splog provides structured logging and output
type Splog struct {
	writer io.Writer
	debug  io.Writer
}

// NewSplog creates a new splog instance writing to stdout, with debug
// messages going to the rotating log file.
func NewSplog() *Splog {
	return &Splog{
		writer: os.Stdout,
		debug:  debugWriter(),
	}
}

// NewSplogWithWriter creates a splog instance writing to the given writer.
// Used by tests to capture output.
func NewSplogWithWriter(w io.Writer) *Splog {
	return &Splog{writer: w, debug: io.Discard}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "❌ "+format+"\n", args...)
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "💡 "+format+"\n", args...)
}

// Debug writes a debug message to the log file only
func (s *Splog) Debug(format string, args ...interface{}) {
	fmt.Fprintf(s.debug, format+"\n", args...)
}

// GetLogFilePath returns the path to the debug log file.
// If PUMPDESIGN_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.pumpdesign/logs/pumpdesign.log
func GetLogFilePath() string {
	if customPath := os.Getenv("PUMPDESIGN_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "pumpdesign.log"
	}

	return filepath.Join(homeDir, ".pumpdesign", "logs", "pumpdesign.log")
}

// debugWriter returns a rotating file writer for debug output.
func debugWriter() io.Writer {
	return &lumberjack.Logger{
		Filename:   GetLogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}
}
