package event

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/conlog/core"
)

// ZerologLevel maps a level to the zerolog level of the same name
func ZerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ZerologListener returns a listener that writes each notification to
// zl at the matching zerolog level
func ZerologListener(zl zerolog.Logger, level core.Level) Listener {
	lvl := ZerologLevel(level)
	return func(message, system string) {
		e := zl.WithLevel(lvl)
		if system != "" {
			e = e.Str(SystemKey, system)
		}
		e.Msg(message)
	}
}

// ForwardToZerolog subscribes a ZerologListener on every level of b
func ForwardToZerolog(b *Bus, zl zerolog.Logger) []Subscription {
	subs := make([]Subscription, 0, core.NumLevels)
	for _, level := range core.AllLevels() {
		subs = append(subs, b.Subscribe(level, ZerologListener(zl, level)))
	}
	return subs
}
