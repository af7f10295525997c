package sloghandler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
)

// DefaultSystemKey is the attribute key taken as the system tag
const DefaultSystemKey = "system"

// Options configures a Handler
type Options struct {
	// Level is the minimum slog level handled (default: slog.LevelDebug).
	// The logger's enabled output still applies on top.
	Level slog.Leveler
	// SystemKey names the attribute used as system tag (default: "system")
	SystemKey string
}

// Handler is a slog.Handler that routes records through a Logger, so
// slog records become styled console lines and notifications.
type Handler struct {
	logger    *logger.Logger
	level     slog.Leveler
	systemKey string
	system    string
	group     string
	attrs     string // preformatted " k=v" pairs
}

// New creates a slog.Handler on top of l. opts may be nil.
func New(l *logger.Logger, opts *Options) *Handler {
	h := &Handler{
		logger:    l,
		level:     slog.LevelDebug,
		systemKey: DefaultSystemKey,
	}
	if opts != nil {
		if opts.Level != nil {
			h.level = opts.Level
		}
		if opts.SystemKey != "" {
			h.systemKey = opts.SystemKey
		}
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle logs the record. Attributes other than the system attribute
// are appended to the message as key=value pairs.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	system := h.system
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)

	record.Attrs(func(a slog.Attr) bool {
		if h.group == "" && a.Key == h.systemKey {
			system = a.Value.Resolve().String()
			return true
		}
		appendAttr(&b, h.group, a)
		return true
	})

	if system == "" {
		system = h.group
	}

	opts := []logger.CallOption{
		logger.WithLevel(slogLevelToCore(record.Level)),
		logger.WithSystem(system),
	}
	if !record.Time.IsZero() {
		opts = append(opts, logger.WithTime(record.Time))
	}
	h.logger.Log(b.String(), opts...)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		if h.group == "" && a.Key == h.systemKey {
			h2.system = a.Value.Resolve().String()
			continue
		}
		appendAttr(&b, h.group, a)
	}
	h2.attrs = b.String()
	return &h2
}

// WithGroup returns a new Handler with the given group name. Later
// attribute keys are qualified by the group and the group doubles as
// system tag when no system attribute is set.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.group != "" {
		h2.group = h.group + "." + name
	} else {
		h2.group = name
	}
	return &h2
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quote(a.Value.String()))
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
