package event

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/conlog/core"
)

// SystemKey is the zap field name carrying the system tag
const SystemKey = "system"

// ZapLevel maps a level to the zap level of the same name
func ZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ZapListener returns a listener that writes each notification to zl at
// the zap level matching level. The system tag, when present, becomes a
// "system" field.
func ZapListener(zl *zap.Logger, level core.Level) Listener {
	lvl := ZapLevel(level)
	return func(message, system string) {
		ce := zl.Check(lvl, message)
		if ce == nil {
			return
		}
		if system != "" {
			ce.Write(zap.String(SystemKey, system))
			return
		}
		ce.Write()
	}
}

// ForwardToZap subscribes a ZapListener on every level of b
func ForwardToZap(b *Bus, zl *zap.Logger) []Subscription {
	subs := make([]Subscription, 0, core.NumLevels)
	for _, level := range core.AllLevels() {
		subs = append(subs, b.Subscribe(level, ZapListener(zl, level)))
	}
	return subs
}
