package logger

import (
	"time"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/style"
)

// callOptions collects the per-call overrides of one Log call
type callOptions struct {
	level    core.Level
	system   string
	at       time.Time
	hasTime  bool
	timeText string
	hasText  bool
	config   Config
}

// CallOption overrides a setting for a single Log call
type CallOption func(*callOptions)

// WithLevel sets the level of the call (default INFO)
func WithLevel(level core.Level) CallOption {
	return func(o *callOptions) {
		o.level = level
	}
}

// WithSystem tags the call with a system name. "" means no tag.
func WithSystem(system string) CallOption {
	return func(o *callOptions) {
		o.system = system
	}
}

// WithTime renders t instead of the current instant
func WithTime(t time.Time) CallOption {
	return func(o *callOptions) {
		o.at = t
		o.hasTime = true
		o.hasText = false
	}
}

// WithTimeText uses s verbatim as the call's time. It is shown whenever
// the timestamp segment is enabled and not a literal itself.
func WithTimeText(s string) CallOption {
	return func(o *callOptions) {
		o.timeText = s
		o.hasText = true
		o.hasTime = false
	}
}

// WithEnabledOutput replaces the enabled output for the call
func WithEnabledOutput(e *EnabledOutput) CallOption {
	return func(o *callOptions) {
		o.config.EnabledOutput = e
	}
}

// WithFormat replaces the style format for the call
func WithFormat(f *style.Format) CallOption {
	return func(o *callOptions) {
		o.config.Format = f
	}
}

// WithSanitizeTokens replaces the sanitize tokens for the call. Passing
// no tokens disables sanitizing for the call.
func WithSanitizeTokens(tokens ...SanitizeToken) CallOption {
	return func(o *callOptions) {
		o.config.SanitizeTokens = append([]SanitizeToken{}, tokens...)
	}
}

// WithShowTime replaces the timestamp mode for the call
func WithShowTime(s *ShowTime) CallOption {
	return func(o *callOptions) {
		o.config.ShowTime = s
	}
}

// WithTemplateLiteralFormats toggles %{NAME} expansion for the call
func WithTemplateLiteralFormats(enabled bool) CallOption {
	return func(o *callOptions) {
		o.config.TemplateLiteralFormats = Bool(enabled)
	}
}
