package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTestLoggerCapturesFormattedOutput(t *testing.T) {
	tl := NewTestLogger(t)

	tl.Infof("bundle %s is ready", "web-server")
	tl.Debugf("retry %d of %d", 2, 5)
	tl.Warn("volume still attached")
	tl.Errorf("detach failed: %v", assert.AnError)

	logs := tl.GetLogs()
	require.Len(t, logs, 4)
	assert.Contains(t, logs[0], "bundle web-server is ready")
	assert.True(t, tl.ContainsLog("retry 2 of 5"))
	assert.True(t, tl.ContainsLog("volume still attached"))
	assert.False(t, tl.ContainsLog("never logged"))
}

func TestTestLoggerCapturesFields(t *testing.T) {
	tl := NewTestLogger(t)

	tl.DebugWithFields("checking volume", zap.String("volume_id", "vol-0123456789abcdef0"))
	tl.InfoWithFields("volume attached", zap.String("device", "/dev/sdf"))
	tl.WarnWithFields("slow attach", zap.Int("seconds", 40))
	tl.ErrorWithFields("attach failed", zap.String("volume_id", "vol-0123456789abcdef0"))

	require.Len(t, tl.GetLogs(), 4)
	assert.True(t, tl.ContainsLog("vol-0123456789abcdef0"))
	assert.True(t, tl.ContainsLog("/dev/sdf"))
}

func TestTestLoggerGetLastLines(t *testing.T) {
	tl := NewTestLogger(t)
	tl.Info("first")
	tl.Info("second")
	tl.Info("third")

	last := tl.GetLastLines(2)
	require.Len(t, last, 2)
	assert.Contains(t, last[0], "second")
	assert.Contains(t, last[1], "third")

	assert.Empty(t, tl.GetLastLines(0))
	assert.Len(t, tl.GetLastLines(10), 3)
}

func TestSetGlobalLoggerRoutesGet(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { SetGlobalLogger(prev) })

	tl := NewTestLogger(t)
	SetGlobalLogger(tl.Logger)

	Get().Infof("routed to the %s core", "capture")
	assert.True(t, tl.ContainsLog("routed to the capture core"))
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NewNopLogger()
	require.NotNil(t, l.Logger)
	l.Infof("dropped %d", 1)
	l.ErrorWithFields("dropped", zap.Int("n", 1))
}

func TestLogPanicRecordsRecoveredValue(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { SetGlobalLogger(prev) })

	tl := NewTestLogger(t)
	SetGlobalLogger(tl.Logger)

	LogPanic("volume index out of range")

	assert.True(t, tl.ContainsLog("PANIC"))
	assert.True(t, tl.ContainsLog("volume index out of range"))
}
