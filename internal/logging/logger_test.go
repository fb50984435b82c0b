package logging

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, cats map[string]bool) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetBase(zap.New(core), cats)
	t.Cleanup(func() { SetBase(nil, nil) })
	return logs
}

func TestDefaultIsSilent(t *testing.T) {
	SetBase(nil, nil)
	// Nothing to assert beyond not panicking on a no-op core.
	Store("loaded %d verses", 3)
	Get(CategoryMatch).Error("boom")
}

func TestCategoryLogging(t *testing.T) {
	logs := observe(t, nil)

	Store("loaded %d verses", 10)
	StoreWarn("corpus %s degraded", "kamba_ramayanam")
	API("listening on %s", ":8080")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "store", entries[0].LoggerName)
	assert.Equal(t, "loaded 10 verses", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "api", entries[2].LoggerName)
}

func TestCategoryToggle(t *testing.T) {
	logs := observe(t, map[string]bool{"store": false, "match": true})

	Store("hidden")
	Match("shown")
	Boot("shown too")

	assert.False(t, IsCategoryEnabled(CategoryStore))
	assert.True(t, IsCategoryEnabled(CategoryBoot))
	assert.Equal(t, 0, logs.FilterLoggerName("store").Len())
	assert.Equal(t, 1, logs.FilterLoggerName("match").Len())
	assert.Equal(t, 1, logs.FilterLoggerName("boot").Len())
}

func TestWithRequestID(t *testing.T) {
	logs := observe(t, nil)

	WithRequestID(CategoryAPI, "req-1").Info("handled")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0].ContextMap()["req"])
}

func TestAuditEvents(t *testing.T) {
	logs := observe(t, nil)

	AuditWithRequest("abc").MatchAccepted("thirukkural", "1", 100, 1.35)
	Audit().QueryRejected("invalid", "no script content")

	entries := logs.FilterLoggerName("audit").All()
	require.Len(t, entries, 2)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "match_accepted", ctx["event"])
	assert.Equal(t, "abc", ctx["req"])
	assert.Equal(t, "thirukkural", ctx["corpus"])
	assert.Equal(t, "query_rejected", entries[1].ContextMap()["event"])
}

func TestTimerLogging(t *testing.T) {
	logs := observe(t, nil)

	timer := StartTimer(CategoryStore, "load")
	elapsed := timer.StopWithThreshold(time.Hour)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())

	StartTimer(CategoryStore, "slow").StopWithThreshold(-1)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { SetBase(nil, nil) })
	path := filepath.Join(t.TempDir(), "versematch.log")

	require.NoError(t, Initialize(Options{Level: "debug", Format: "console", OutputPaths: []string{path}}))
	assert.Error(t, Initialize(Options{Level: "loud"}))
}
