package event

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/conlog/core"
)

// LogrusLevel maps a level to the logrus level of the same name
func LogrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// LogrusListener returns a listener that writes each notification to l
// at the matching logrus level
func LogrusListener(l *logrus.Logger, level core.Level) Listener {
	lvl := LogrusLevel(level)
	return func(message, system string) {
		if system == "" {
			l.Log(lvl, message)
			return
		}
		l.WithField(SystemKey, system).Log(lvl, message)
	}
}

// ForwardToLogrus subscribes a LogrusListener on every level of b
func ForwardToLogrus(b *Bus, l *logrus.Logger) []Subscription {
	subs := make([]Subscription, 0, core.NumLevels)
	for _, level := range core.AllLevels() {
		subs = append(subs, b.Subscribe(level, LogrusListener(l, level)))
	}
	return subs
}
