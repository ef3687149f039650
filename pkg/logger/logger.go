package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"runtime/debug"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

const (
	LogFilePermissions = 0600
	InfoLogLevel       = "info"
	LastLogLines       = 100
)

var (
	globalLogger *zap.Logger
	loggerMutex  sync.RWMutex
	once         sync.Once

	// Global settings, seeded by InitLoggerOutputs before InitProduction runs.
	GlobalEnableConsoleLogger bool
	GlobalEnableFileLogger    bool
	GlobalLogPath             string = "/tmp/jalusi.log"
	GlobalLogLevel            string = InfoLogLevel
	GlobalInstantSync         bool
	GlobalLogFile             *os.File
)

// Logger is the project-wide logging handle. All packages obtain one via Get().
type Logger struct {
	*zap.Logger
}

// InitLoggerOutputs loads logger settings from viper before the first Get().
func InitLoggerOutputs() {
	GlobalEnableConsoleLogger = false
	GlobalEnableFileLogger = true
	GlobalLogPath = "/tmp/jalusi.log"
	GlobalLogLevel = InfoLogLevel
	GlobalInstantSync = false

	if viper.IsSet("general.log_path") {
		GlobalLogPath = viper.GetString("general.log_path")
	}
	if viper.IsSet("general.log_level") {
		GlobalLogLevel = viper.GetString("general.log_level")
	}
	if viper.IsSet("general.enable_console_logger") {
		GlobalEnableConsoleLogger = viper.GetBool("general.enable_console_logger")
	}
	if viper.IsSet("general.enable_file_logger") {
		GlobalEnableFileLogger = viper.GetBool("general.enable_file_logger")
	}
}

func InitProduction() {
	once.Do(func() {
		if GlobalLogLevel == "" {
			GlobalLogLevel = InfoLogLevel
		}
		level := zap.NewAtomicLevelAt(getZapLevel(GlobalLogLevel))

		var cores []zapcore.Core
		if GlobalEnableFileLogger {
			if fileCore, err := createFileCore(level); err == nil {
				cores = append(cores, fileCore)
			}
		}
		if GlobalEnableConsoleLogger {
			cores = append(cores, createConsoleCore(level))
		}
		if len(cores) == 0 {
			cores = append(cores, zapcore.NewNopCore())
		}

		core := zapcore.NewTee(cores...)
		globalLogger = zap.New(core, zap.AddCaller()).Named("jalusi")
	})
}

func createFileCore(level zap.AtomicLevel) (zapcore.Core, error) {
	logFile, err := os.OpenFile(
		GlobalLogPath,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		LogFilePermissions,
	)
	if err != nil {
		return nil, err
	}
	GlobalLogFile = logFile

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(logFile),
		level,
	), nil
}

func createConsoleCore(level zap.AtomicLevel) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(os.Stderr),
		level,
	)
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func (l *Logger) syncIfNeeded() {
	if GlobalInstantSync {
		_ = l.Sync()
	}
}

func (l *Logger) log(level zapcore.Level, msg string) {
	if l.Logger != nil && l.Logger.Core().Enabled(level) {
		if ce := l.Logger.Check(level, msg); ce != nil {
			ce.Write()
		}
		l.syncIfNeeded()
	}
}

func (l *Logger) Debug(msg string) { l.log(zapcore.DebugLevel, msg) }
func (l *Logger) Info(msg string)  { l.log(zapcore.InfoLevel, msg) }
func (l *Logger) Warn(msg string)  { l.log(zapcore.WarnLevel, msg) }
func (l *Logger) Error(msg string) { l.log(zapcore.ErrorLevel, msg) }
func (l *Logger) Fatal(msg string) { l.log(zapcore.FatalLevel, msg) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.Debug(fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...interface{})  { l.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.Warn(fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.Error(fmt.Sprintf(format, args...)) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.Fatal(fmt.Sprintf(format, args...)) }

func (l *Logger) DebugWithFields(msg string, fields ...zap.Field) {
	if l.Logger != nil {
		l.Logger.Debug(msg, fields...)
		l.syncIfNeeded()
	}
}

func (l *Logger) InfoWithFields(msg string, fields ...zap.Field) {
	if l.Logger != nil {
		l.Logger.Info(msg, fields...)
		l.syncIfNeeded()
	}
}

func (l *Logger) WarnWithFields(msg string, fields ...zap.Field) {
	if l.Logger != nil {
		l.Logger.Warn(msg, fields...)
		l.syncIfNeeded()
	}
}

func (l *Logger) ErrorWithFields(msg string, fields ...zap.Field) {
	if l.Logger != nil {
		l.Logger.Error(msg, fields...)
		l.syncIfNeeded()
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fmt.Sprintf("[%s]", t.Format("2006-01-02 15:04:05")))
}

func getZapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Get() *Logger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if globalLogger == nil {
		InitProduction()
	}
	return &Logger{Logger: globalLogger}
}

func SetGlobalLogger(l *Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = l.Logger
}

func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// TestLogger captures everything it logs so tests can assert on output.
// The capture runs through a real zap core, so the formatted and field
// variants land in the buffer too.
type TestLogger struct {
	*Logger
	t       *testing.T
	logLock sync.Mutex
	lines   []string
}

type testCaptureWriter struct {
	tl *TestLogger
}

func (w *testCaptureWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	w.tl.logLock.Lock()
	w.tl.lines = append(w.tl.lines, line)
	w.tl.logLock.Unlock()
	if w.tl.t != nil {
		w.tl.t.Log(line)
	}
	return len(p), nil
}

func NewTestLogger(tb zaptest.TestingT) *TestLogger {
	t, ok := tb.(*testing.T)
	if !ok {
		panic("tb does not implement *testing.T")
	}

	tl := &TestLogger{t: t}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(&testCaptureWriter{tl: tl}),
		zapcore.DebugLevel,
	)
	tl.Logger = &Logger{Logger: zap.New(core)}
	return tl
}

func (tl *TestLogger) GetLogs() []string {
	tl.logLock.Lock()
	defer tl.logLock.Unlock()
	return append([]string{}, tl.lines...)
}

func (tl *TestLogger) GetLastLines(n int) []string {
	logs := tl.GetLogs()
	if n <= 0 {
		return []string{}
	}
	if n >= len(logs) {
		return logs
	}
	return logs[len(logs)-n:]
}

// ContainsLog reports whether any captured line contains the substring.
func (tl *TestLogger) ContainsLog(substr string) bool {
	for _, line := range tl.GetLogs() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func LogPanic(rec interface{}) {
	stack := debug.Stack()
	l := Get()
	l.ErrorWithFields("PANIC", zap.Any("recovered", rec), zap.String("stack", string(stack)))
	_ = l.Sync()
}
