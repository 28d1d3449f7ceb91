package logger

import (
	"log"
	"os"

	usecasecontract "github.com/acmchapter/portal-api/internal/usecase/contract"
)

// StdLogger implements IAppLogger on top of the standard log package.
type StdLogger struct {
	out *log.Logger
}

// NewStdLogger creates a new StdLogger writing to stderr.
func NewStdLogger() usecasecontract.IAppLogger {
	return &StdLogger{
		out: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *StdLogger) logf(level, format string, args ...interface{}) {
	l.out.Printf("["+level+"] "+format, args...)
}

// Debugf logs a debug message.
func (l *StdLogger) Debugf(format string, args ...interface{}) {
	l.logf("DEBUG", format, args...)
}

// Infof logs an info message.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.logf("INFO", format, args...)
}

// Warnf logs a warning message.
func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.logf("WARN", format, args...)
}

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	l.logf("ERROR", format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	l.out.Fatalf("[FATAL] "+format, args...)
}
