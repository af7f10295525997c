package event

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/conlog/core"
)

func TestZapLevel(t *testing.T) {
	tests := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := ZapLevel(tt.level); got != tt.want {
				t.Errorf("ZapLevel(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestForwardToZap(t *testing.T) {
	zcore, logs := observer.New(zapcore.DebugLevel)
	zl := zap.New(zcore)

	b := NewBus()
	subs := ForwardToZap(b, zl)
	if len(subs) != core.NumLevels {
		t.Fatalf("ForwardToZap() returned %d subscriptions", len(subs))
	}

	b.Publish(core.WarnLevel, "disk almost full", "storage")
	b.Publish(core.DebugLevel, "tick", "")

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("got %d zap entries, want 2", len(entries))
	}

	warn := entries[0]
	if warn.Level != zapcore.WarnLevel || warn.Message != "disk almost full" {
		t.Errorf("first entry = %v %q", warn.Level, warn.Message)
	}
	if got := warn.ContextMap()[SystemKey]; got != "storage" {
		t.Errorf("system field = %v, want storage", got)
	}

	debug := entries[1]
	if debug.Level != zapcore.DebugLevel {
		t.Errorf("second entry level = %v", debug.Level)
	}
	if _, ok := debug.ContextMap()[SystemKey]; ok {
		t.Error("system field present for an untagged notification")
	}
}

func TestZapListener_RespectsZapLevel(t *testing.T) {
	zcore, logs := observer.New(zapcore.WarnLevel)
	listener := ZapListener(zap.New(zcore), core.InfoLevel)

	listener("filtered by zap", "")
	if logs.Len() != 0 {
		t.Errorf("zap recorded %d entries below its level", logs.Len())
	}
}
