package logger

import (
	"fmt"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/event"
	"github.com/philipp01105/conlog/handler"
	"github.com/philipp01105/conlog/handler/consolehandler"
	"github.com/philipp01105/conlog/style"
)

// Logger formats messages into styled console lines and raises a
// notification per call. Its configuration is fixed at construction,
// so a Logger is safe for concurrent use.
type Logger struct {
	handler handler.Handler
	bus     *event.Bus
	clock   core.Clock
	config  Config
	styles  *core.Styles
	bound   []CallOption
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler handler.Handler
	bus     *event.Bus
	clock   core.Clock
	config  Config
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the console sink (default: console handler on stdout)
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithBus sets the notification bus (default: a new, empty bus)
func (b *Builder) WithBus(bus *event.Bus) *Builder {
	b.bus = bus
	return b
}

// WithClock sets the clock (default: core.SystemClock)
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithCoarseClock switches to core.CoarseClock, which reads a cached
// instant refreshed in the background instead of calling time.Now()
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	if enabled {
		b.clock = core.NewCoarseClock()
	} else if _, ok := b.clock.(core.CoarseClock); ok {
		b.clock = nil
	}
	return b
}

// WithConfig sets the configuration; absent fields take defaults
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		handler: b.handler,
		bus:     b.bus,
		clock:   b.clock,
		config:  b.config.withDefaults(),
	}
	if l.handler == nil {
		l.handler = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	}
	if l.bus == nil {
		l.bus = event.NewBus()
	}
	if l.clock == nil {
		l.clock = core.SystemClock{}
	}
	styles := style.Resolve(l.config.Format)
	l.styles = &styles
	return l
}

// New creates a Logger writing to stdout with the given configuration
func New(cfg Config) *Logger {
	return NewBuilder().WithConfig(cfg).Build()
}

// Config returns a copy of the fully populated configuration
func (l *Logger) Config() Config {
	return l.config.clone()
}

// Events returns the bus notifications are published on
func (l *Logger) Events() *event.Bus {
	return l.bus
}

// Handler returns the console sink
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// With creates a new Logger whose calls apply opts before their own
// options. The new Logger shares the handler, bus and clock.
func (l *Logger) With(opts ...CallOption) *Logger {
	bound := make([]CallOption, len(l.bound)+len(opts))
	copy(bound, l.bound)
	copy(bound[len(l.bound):], opts)

	return &Logger{
		handler: l.handler,
		bus:     l.bus,
		clock:   l.clock,
		config:  l.config,
		styles:  l.styles,
		bound:   bound,
	}
}

// Log writes message to the console if its level is enabled for
// console output, then notifies the listeners of its level if the level
// is enabled for events. It never fails; sink errors are left to the
// handler's Stats.
func (l *Logger) Log(message string, opts ...CallOption) {
	co := callOptions{level: core.InfoLevel}
	l.apply(&co, opts)
	l.log(message, &co)
}

func (l *Logger) logAt(level core.Level, message string, opts []CallOption) {
	co := callOptions{level: core.InfoLevel}
	l.apply(&co, opts)
	co.level = level
	l.log(message, &co)
}

func (l *Logger) apply(co *callOptions, opts []CallOption) {
	for _, o := range l.bound {
		o(co)
	}
	for _, o := range opts {
		if o != nil {
			o(co)
		}
	}
}

func (l *Logger) log(message string, co *callOptions) {
	eff := resolve(l.config, l.styles, co)

	if len(eff.sanitize) > 0 {
		message = sanitize(message, eff.sanitize)
	}
	if eff.templates {
		message = style.Expand(message)
	}

	if eff.enabled.ConsoleEnabled(eff.level) && l.handler != nil {
		if !eff.hasTime {
			eff.at, eff.hasTime = l.clock.Now(), true
		}
		entry := core.GetEntry()
		entry.Time = eff.at
		entry.Level = eff.level
		entry.Message = message
		entry.System = eff.system
		entry.Styles = eff.styles
		entry.Stamp = eff.stamp(l.clock)

		// Write errors are counted by the handler
		_ = l.handler.Handle(entry)
		core.PutEntry(entry)
	}

	if eff.enabled.EventsEnabled(eff.level) {
		l.bus.Publish(eff.level, message, eff.system)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, opts ...CallOption) {
	l.logAt(core.DebugLevel, msg, opts)
}

// Info logs an info message
func (l *Logger) Info(msg string, opts ...CallOption) {
	l.logAt(core.InfoLevel, msg, opts)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, opts ...CallOption) {
	l.logAt(core.WarnLevel, msg, opts)
}

// Error logs an error message
func (l *Logger) Error(msg string, opts ...CallOption) {
	l.logAt(core.ErrorLevel, msg, opts)
}

// Debugf logs a debug message with formatting. Style placeholders
// belong in the arguments, not the format string.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logAt(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logAt(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logAt(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logAt(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
