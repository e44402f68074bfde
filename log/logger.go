// Package log wraps logrus behind a small package-level API with a
// colored text formatter for terminals and a JSON formatter for
// everything else.
package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"
)

var logger = logrus.New()

const defaultTimestampFormat = time.RFC3339

// Logger provides configuration for the logger.
type Logger struct {
	Level      string
	Formatter  string
	OutputFile string
	JSONFormat JSONFormatConfig
	TextFormat TextFormatConfig
}

// JSONFormatConfig provides configuration for the JSON logger format.
type JSONFormatConfig struct {
	DisableTimestamp bool
	TimestampFormat  string
}

// TextFormatConfig provides configuration for the text logger format.
type TextFormatConfig struct {
	// Set to true to bypass checking for a TTY before outputting colors.
	ForceColors bool

	// Force disabling colors.
	DisableColors bool

	// Disable timestamp logging. Useful when output is redirected to a
	// logging system that already adds timestamps.
	DisableTimestamp bool

	// TimestampFormat to use for display when a full timestamp is printed.
	TimestampFormat string

	// The fields are sorted by default for a consistent output.
	DisableSorting bool

	Indent string
}

// DefaultLoggerConfig returns a Logger instance with default values.
func DefaultLoggerConfig() Logger {
	return Logger{
		Level:     "info",
		Formatter: "text",
		TextFormat: TextFormatConfig{
			TimestampFormat: defaultTimestampFormat,
		},
	}
}

type jsonFormatter struct {
	conf JSONFormatConfig
	fmt  *logrus.JSONFormatter
}

func (f *jsonFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if f.fmt == nil {
		f.fmt = &logrus.JSONFormatter{
			DisableTimestamp: f.conf.DisableTimestamp,
			TimestampFormat:  f.conf.TimestampFormat,
		}
	}
	return f.fmt.Format(entry)
}

type textFormatter struct {
	TextFormatConfig
	json jsonFormatter
}

func checkIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return terminal.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}

func isColorTerminal(w io.Writer) bool {
	return checkIfTerminal(w) && (runtime.GOOS != "windows")
}

func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	isColored := (f.ForceColors || isColorTerminal(entry.Logger.Out)) && !f.DisableColors
	if !isColored {
		return f.json.Format(entry)
	}

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if !f.DisableTimestamp {
		entry.Data["time"] = entry.Time.Format(f.TimestampFormat)
	}

	var levelColor aurora.Color

	switch entry.Level {
	case logrus.DebugLevel:
		levelColor = aurora.MagentaFg
	case logrus.WarnLevel:
		levelColor = aurora.BrownFg
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = aurora.RedFg
	default:
		levelColor = aurora.CyanFg
	}

	fmt.Fprintf(b, "%s%-20s %s\n", f.Indent, aurora.Colorize("message", levelColor), entry.Message)

	for _, k := range f.sortKeys(entry) {
		v := entry.Data[k]

		switch v.(type) {
		case string, bool, error, fmt.Stringer,
			int, int8, int16, int32, int64,
			uint8, uint16, uint32, uint64,
			float32, float64:
			// printed as-is below
		default:
			v = pretty.Sprint(v)
		}

		if vString, ok := v.(string); ok {
			vParts := strings.Split(vString, "\n")
			padding := 21
			v = strings.Join(vParts, "\n"+strings.Repeat(" ", padding))
		}

		fmt.Fprintf(b, "%s%-20s %v\n", f.Indent, aurora.Colorize(k, levelColor), v)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *textFormatter) sortKeys(entry *logrus.Entry) []string {
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	if !f.DisableSorting {
		sort.Strings(keys)
	}
	return keys
}

// ConfigureLogger configures the package-level logger.
func ConfigureLogger(conf Logger) {
	switch strings.ToLower(conf.Level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.Warningf("Unknown log level: '%s'; defaulting to 'info'", conf.Level)
		logger.SetLevel(logrus.InfoLevel)
	}

	switch strings.ToLower(conf.Formatter) {
	case "json":
		logger.SetFormatter(&jsonFormatter{
			conf: conf.JSONFormat,
		})

	// Default to text
	default:
		if strings.ToLower(conf.Formatter) != "text" {
			logger.Warningf("Unknown log formatter: '%s'; defaulting to 'text'", conf.Formatter)
		}
		logger.SetFormatter(&textFormatter{
			conf.TextFormat,
			jsonFormatter{
				conf: conf.JSONFormat,
			},
		})
	}

	if conf.OutputFile != "" {
		logFile, err := os.OpenFile(
			conf.OutputFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666,
		)
		if err != nil {
			logger.Errorf("Can't open log output file: %s", conf.OutputFile)
		} else {
			logger.SetOutput(logFile)
		}
	}
}

// Debug log message
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Debugf log message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Info log message
func Info(args ...interface{}) {
	logger.Info(args...)
}

// Infof log message
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warning log message
func Warning(args ...interface{}) {
	logger.Warning(args...)
}

// Warningf log message
func Warningf(format string, args ...interface{}) {
	logger.Warningf(format, args...)
}

// Error log message
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Errorf log message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Fields type, used to pass to WithFields.
type Fields = logrus.Fields

// WithFields creates an entry from the package logger and adds multiple
// fields to it.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// GetLogger returns the configured logger instance
func GetLogger() *logrus.Logger {
	return logger
}
