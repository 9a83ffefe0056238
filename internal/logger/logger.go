// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/anvogue/anvogue-admin/internal/config"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	cfg *config.LogConfig
)

// DefaultConfig logs text to stdout at info level.
func DefaultConfig() *config.LogConfig {
	return &config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "stdout",
		Path:   "./logs",
	}
}

// Init sets the configuration used by loggers created afterwards and creates the log
// directory when file output is on.
func Init(c *config.LogConfig) error {
	if c == nil {
		c = DefaultConfig()
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	cfg = c
	loggers = make(map[string]*logrus.Logger)

	if c.Output == "file" || c.Output == "both" {
		if err := os.MkdirAll(c.Path, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}
	return nil
}

// GetLogger returns the named logger (app, http, backend), creating it on first use.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if l, ok := loggers[name]; ok {
		return l
	}
	l := createLogger(name, cfg)
	loggers[name] = l
	return l
}

func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

func createLogger(name string, c *config.LogConfig) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				return s[len(s)-1], fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	var writers []io.Writer
	if c.Output == "file" || c.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(c.Path, name+".log"),
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		})
	}
	if c.Output == "stdout" || c.Output == "both" || len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}
	l.SetOutput(io.MultiWriter(writers...))

	return l
}

// Discard returns a logger that drops everything; tests use it.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
