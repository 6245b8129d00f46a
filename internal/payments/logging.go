package payments

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"go-commerce/pkg/logger"
)

// ConsoleLogger writes timestamped log lines to a writer. The format
// is presentational only; callers must not parse it.
type ConsoleLogger struct {
	out io.Writer
}

// NewConsoleLogger creates a console logger writing to out.
func NewConsoleLogger(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out}
}

// Info writes an informational line with a timestamp prefix.
func (l *ConsoleLogger) Info(message string) {
	fmt.Fprintf(l.out, "[INFO] %s - %s\n", time.Now().Format("2006-01-02 15:04:05"), message)
}

// Error writes an error line with a timestamp prefix, followed by the
// error detail when present.
func (l *ConsoleLogger) Error(message string, err error) {
	fmt.Fprintf(l.out, "[ERROR] %s - %s\n", time.Now().Format("2006-01-02 15:04:05"), message)

	if err != nil {
		fmt.Fprintf(l.out, "Error: %s\n", err.Error())
	}
}

// ZapLogger adapts the service logger to the payments Logger capability.
type ZapLogger struct {
	log *logger.Logger
}

// NewZapLogger creates a zap-backed payments logger.
func NewZapLogger(log *logger.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

// Info records an informational event.
func (l *ZapLogger) Info(message string) {
	l.log.Info(message)
}

// Error records a failure together with its cause.
func (l *ZapLogger) Error(message string, err error) {
	l.log.Error(message, zap.Error(err))
}
